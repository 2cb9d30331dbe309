package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"dishorder/config"
	"dishorder/internal/api"
	"dishorder/internal/domain"
	"dishorder/internal/refresh"
	"dishorder/internal/service"
)

func main() {
	ctx := context.Background()

	client := api.NewClient(config.APIBaseURL(), config.HTTPTimeout())
	svc := service.NewMerchantService(client, config.APIBaseURL())

	// Silent background refresh mirrors the dashboard's 30s polling; it only
	// raises a notice when the pending count changes.
	var lastPending = -1
	poller := refresh.NewPoller(refresh.DefaultInterval, func(ctx context.Context) {
		view, err := svc.Dashboard(ctx, "all")
		if err != nil {
			return
		}
		if view.Stats.PendingCount != lastPending {
			lastPending = view.Stats.PendingCount
			fmt.Printf("\n[auto-refresh] %d order(s) pending\n> ", view.Stats.PendingCount)
		}
	})
	poller.Start(ctx)
	defer poller.Stop()

	log.Printf("Merchant app connected to %s", config.APIBaseURL())
	runMenu(ctx, svc)
}

func runMenu(ctx context.Context, svc service.MerchantServiceInterface) {
	scanner := bufio.NewScanner(os.Stdin)
	filter := "all"
	for {
		fmt.Printf("\n[filter=%s] orders | filter <status|all> | show <id> | next <id> | cancel <id> | qr <id> | dishes | adddish | toggle <id> | deldish <id> | quit\n> ", filter)
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "orders":
			view, err := svc.Dashboard(ctx, filter)
			if report(err) {
				continue
			}
			fmt.Printf("total %d | pending %d | completed %d | revenue %.2f\n",
				view.Stats.TotalOrders, view.Stats.PendingCount, view.Stats.CompletedCount, view.Stats.Revenue)
			for _, o := range view.Orders {
				fmt.Printf("#%d %s  %-20s %7.2f  %s\n", o.ID, o.CreatedAt.Format("01-02 15:04"), o.UserName, o.TotalAmount, o.Status.Label())
			}
		case "filter":
			if len(args) == 0 {
				fmt.Println("missing status")
				continue
			}
			filter = args[0]
		case "show":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			order, err := svc.OrderDetail(ctx, id)
			if report(err) {
				continue
			}
			printOrder(order)
		case "next":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			order, err := svc.OrderDetail(ctx, id)
			if report(err) {
				continue
			}
			next, err := svc.Advance(ctx, order)
			if report(err) {
				continue
			}
			fmt.Printf("order #%d is now %s\n", order.ID, next.Label())
		case "cancel":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			order, err := svc.OrderDetail(ctx, id)
			if report(err) {
				continue
			}
			if report(svc.Cancel(ctx, order)) {
				continue
			}
			fmt.Printf("order #%d cancelled\n", order.ID)
		case "qr":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			png, err := svc.PickupQR(id)
			if report(err) {
				continue
			}
			name := fmt.Sprintf("pickup-%d.png", id)
			if report(os.WriteFile(name, png, 0o644)) {
				continue
			}
			fmt.Println("saved", name)
		case "dishes":
			dishes, err := svc.ListDishes(ctx)
			if report(err) {
				continue
			}
			for _, d := range dishes {
				avail := "on"
				if !d.IsAvailable {
					avail = "off"
				}
				fmt.Printf("#%d %-24s %7.2f  [%s]\n", d.ID, d.Name, d.Price, avail)
			}
		case "adddish":
			dish, ok := promptDish(scanner)
			if !ok {
				continue
			}
			created, err := svc.CreateDish(ctx, dish)
			if report(err) {
				continue
			}
			fmt.Printf("dish #%d created\n", created.ID)
		case "toggle":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			dish, err := findDish(ctx, svc, id)
			if report(err) {
				continue
			}
			report(svc.ToggleAvailability(ctx, *dish))
		case "deldish":
			if id, ok := argInt(args, 0); ok {
				report(svc.DeleteDish(ctx, id))
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
		}
	}
}

func printOrder(o *domain.Order) {
	fmt.Printf("order #%d  %s  %s\ncustomer: %s (%s)\n", o.ID, o.Status.Label(), o.CreatedAt.Format("2006-01-02 15:04"), o.UserName, o.UserID)
	for _, item := range o.Items {
		fmt.Printf("  %-24s %7.2f x%d\n", item.DishName, item.Price, item.Quantity)
	}
	fmt.Printf("total: %.2f\n", o.TotalAmount)
	if o.Note != "" {
		fmt.Println("note:", o.Note)
	}
}

func promptDish(scanner *bufio.Scanner) (domain.Dish, bool) {
	read := func(label string) (string, bool) {
		fmt.Printf("%s: ", label)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}
	name, ok := read("name")
	if !ok {
		return domain.Dish{}, false
	}
	priceRaw, ok := read("price")
	if !ok {
		return domain.Dish{}, false
	}
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		fmt.Println("not a price:", priceRaw)
		return domain.Dish{}, false
	}
	desc, ok := read("description")
	if !ok {
		return domain.Dish{}, false
	}
	instructions, ok := read("cooking instructions (optional)")
	if !ok {
		return domain.Dish{}, false
	}
	category, ok := read("category (optional)")
	if !ok {
		return domain.Dish{}, false
	}
	return domain.Dish{
		Name:                name,
		Price:               price,
		Description:         desc,
		CookingInstructions: instructions,
		Category:            category,
		IsAvailable:         true,
	}, true
}

func findDish(ctx context.Context, svc service.MerchantServiceInterface, id int) (*domain.Dish, error) {
	dishes, err := svc.ListDishes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, fmt.Errorf("dish %d not found", id)
}

func argInt(args []string, i int) (int, bool) {
	if i >= len(args) {
		fmt.Println("missing argument")
		return 0, false
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Println("not a number:", args[i])
		return 0, false
	}
	return n, true
}

func report(err error) bool {
	if err != nil {
		fmt.Println("error:", err)
		return true
	}
	return false
}

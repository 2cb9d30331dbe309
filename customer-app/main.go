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
	"dishorder/internal/service"
	"dishorder/internal/session"
	"dishorder/internal/storage"
)

func main() {
	ctx := context.Background()

	var store storage.SnapshotStore
	if addr := config.RedisAddr(); addr != "" {
		store = storage.NewRedisStore(config.MustInitRedis(addr), "customer")
	} else {
		fileStore, err := storage.NewFileStore(config.StorageDir())
		if err != nil {
			log.Fatal("Failed to open snapshot storage:", err)
		}
		store = fileStore
	}

	sess := session.New(store, config.JWTSecret())
	if err := sess.Load(ctx); err != nil {
		log.Fatal("Failed to load session:", err)
	}
	if _, err := sess.EnsureToken(ctx); err != nil {
		log.Fatal("Failed to establish local identity:", err)
	}

	client := api.NewClient(config.APIBaseURL(), config.HTTPTimeout())
	svc := service.NewCustomerService(client, sess)

	log.Printf("Customer app connected to %s", config.APIBaseURL())
	runMenu(ctx, svc, sess)
}

func runMenu(ctx context.Context, svc service.CustomerServiceInterface, sess *session.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n[%d item(s) in cart] menu | detail <id> | add <id> [qty] | cart | dec <id> | rm <id> | clear | submit [note] | history | quit\n> ",
			sess.Cart().ItemCount())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "menu":
			dishes, err := svc.BrowseDishes(ctx)
			if report(err) {
				continue
			}
			for _, d := range dishes {
				marker := " "
				if !d.IsAvailable {
					marker = "x"
				}
				fmt.Printf("%s #%d %-24s %7.2f  %s\n", marker, d.ID, d.Name, d.Price, d.Category)
			}
		case "detail":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			dish, err := svc.DishDetail(ctx, id)
			if report(err) {
				continue
			}
			fmt.Printf("#%d %s  %.2f\n%s\nInstructions: %s\n", dish.ID, dish.Name, dish.Price, dish.Description, dish.CookingInstructions)
		case "add":
			id, ok := argInt(args, 0)
			if !ok {
				continue
			}
			qty := 1
			if q, ok := argInt(args, 1); ok {
				qty = q
			}
			dish, err := svc.DishDetail(ctx, id)
			if report(err) {
				continue
			}
			badge, err := svc.AddToCart(ctx, *dish, qty)
			if report(err) {
				continue
			}
			fmt.Printf("added %s, cart now holds %d item(s)\n", dish.Name, badge)
		case "cart":
			for _, line := range sess.Cart().Lines() {
				fmt.Printf("#%d %-24s %7.2f x%d\n", line.DishID, line.DishName, line.Price, line.Quantity)
			}
			fmt.Printf("total: %.2f\n", sess.Cart().DisplayTotal())
		case "dec":
			if id, ok := argInt(args, 0); ok {
				_, err := svc.DecreaseFromCart(ctx, id)
				report(err)
			}
		case "rm":
			if id, ok := argInt(args, 0); ok {
				report(svc.RemoveFromCart(ctx, id))
			}
		case "clear":
			report(svc.ClearCart(ctx))
		case "submit":
			order, err := svc.SubmitOrder(ctx, strings.Join(args, " "))
			if report(err) {
				continue
			}
			fmt.Printf("order #%d placed, total %.2f, status %s\n", order.ID, order.TotalAmount, order.Status.Label())
		case "history":
			orders, err := svc.OrderHistory(ctx)
			if report(err) {
				continue
			}
			for _, o := range orders {
				fmt.Printf("#%d %s  %.2f  %s\n", o.ID, o.CreatedAt.Format("01-02 15:04"), o.TotalAmount, o.Status.Label())
			}
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command")
		}
	}
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

// report prints the error, if any, and tells the caller to skip the rest of
// the command. No error is fatal; the loop always returns to the prompt.
func report(err error) bool {
	if err != nil {
		fmt.Println("error:", err)
		return true
	}
	return false
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dishorder/internal/cart"
	"dishorder/internal/domain"
	"dishorder/internal/storage"
)

const defaultUserName = "Guest"

// Session owns the cart and the local identity for one app instance. It is
// passed explicitly to the services instead of living in ambient global
// state, and it writes a snapshot after every cart mutation so a restarted
// view reconstructs identical state.
type Session struct {
	store     storage.SnapshotStore
	cart      *cart.Cart
	userID    string
	userName  string
	token     string
	jwtSecret []byte
	now       func() time.Time
}

func New(store storage.SnapshotStore, jwtSecret []byte) *Session {
	return &Session{
		store:     store,
		cart:      cart.New(),
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Load restores the persisted snapshot: cart lines, identity, token.
// Missing keys are not an error; a corrupt cart snapshot is discarded.
func (s *Session) Load(ctx context.Context) error {
	if raw, ok, err := s.store.Get(ctx, storage.KeyCart); err != nil {
		return fmt.Errorf("load cart snapshot: %w", err)
	} else if ok {
		var lines []domain.CartLine
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			log.Printf("[SESSION] discarding corrupt cart snapshot: %v", err)
		} else {
			s.cart = cart.FromLines(lines)
		}
	}
	if v, ok, err := s.store.Get(ctx, storage.KeyUserID); err != nil {
		return err
	} else if ok {
		s.userID = v
	}
	if v, ok, err := s.store.Get(ctx, storage.KeyUserName); err != nil {
		return err
	} else if ok {
		s.userName = v
	}
	if v, ok, err := s.store.Get(ctx, storage.KeyToken); err != nil {
		return err
	} else if ok {
		s.token = v
	}
	return nil
}

// UserID lazily fabricates and persists a local identifier the way the
// original login stub did.
func (s *Session) UserID(ctx context.Context) (string, error) {
	if s.userID != "" {
		return s.userID, nil
	}
	s.userID = fmt.Sprintf("USER_%d", s.now().UnixMilli())
	if err := s.store.Set(ctx, storage.KeyUserID, s.userID); err != nil {
		return "", fmt.Errorf("persist user id: %w", err)
	}
	return s.userID, nil
}

func (s *Session) UserName(ctx context.Context) (string, error) {
	if s.userName != "" {
		return s.userName, nil
	}
	s.userName = defaultUserName
	if err := s.store.Set(ctx, storage.KeyUserName, s.userName); err != nil {
		return "", fmt.Errorf("persist user name: %w", err)
	}
	return s.userName, nil
}

func (s *Session) SetUserName(ctx context.Context, name string) error {
	s.userName = name
	return s.store.Set(ctx, storage.KeyUserName, name)
}

// EnsureToken issues the local login token if none is stored. The token is
// only a stub: self-signed, never validated by the backend.
func (s *Session) EnsureToken(ctx context.Context) (string, error) {
	if s.token != "" {
		return s.token, nil
	}
	userID, err := s.UserID(ctx)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": jwt.NewNumericDate(s.now()),
		"exp": jwt.NewNumericDate(s.now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign local token: %w", err)
	}
	s.token = signed
	if err := s.store.Set(ctx, storage.KeyToken, signed); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	log.Printf("[SESSION] issued local token for %s", userID)
	return signed, nil
}

func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// AddToCart merges the dish and persists the snapshot.
func (s *Session) AddToCart(ctx context.Context, dish domain.Dish, qty int) error {
	s.cart.AddOrIncrement(dish, qty)
	return s.saveCart(ctx)
}

func (s *Session) DecrementCart(ctx context.Context, dishID int) error {
	if err := s.cart.Decrement(dishID); err != nil {
		return err
	}
	return s.saveCart(ctx)
}

func (s *Session) RemoveFromCart(ctx context.Context, dishID int) error {
	if err := s.cart.Remove(dishID); err != nil {
		return err
	}
	return s.saveCart(ctx)
}

func (s *Session) ClearCart(ctx context.Context) error {
	s.cart.Clear()
	return s.saveCart(ctx)
}

func (s *Session) saveCart(ctx context.Context) error {
	data, err := json.Marshal(s.cart.Lines())
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyCart, string(data)); err != nil {
		return fmt.Errorf("persist cart snapshot: %w", err)
	}
	return nil
}

// Command promote grants or revokes a role on an existing account. It
// bootstraps the first root user, which no API call can create.
//
// Usage:
//
//	promote --email=user@example.com [--role=root] [--revoke]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/quiz-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/quiz-backend/internal/config"
	"github.com/heartmarshall/quiz-backend/internal/domain"
	"github.com/heartmarshall/quiz-backend/internal/permission"
)

func main() {
	email := flag.String("email", "", "account email")
	role := flag.String("role", string(domain.RoleRoot), "role to grant or revoke")
	revoke := flag.Bool("revoke", false, "remove the role instead of granting it")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}
	r := domain.Permission(*role)
	if !slices.Contains(permission.DefaultHierarchy().Roles(), r) {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	msg, err := apply(ctx, user.New(pool), *email, r, *revoke)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(msg)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetPermissions(ctx context.Context, id domain.ID, permissions []domain.Permission) (*domain.User, error)
}

func apply(ctx context.Context, users userStore, email string, role domain.Permission, revoke bool) (string, error) {
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", email, err)
	}

	has := slices.Contains(u.Permissions, role)
	var next []domain.Permission
	switch {
	case revoke && has:
		next = slices.DeleteFunc(slices.Clone(u.Permissions), func(p domain.Permission) bool { return p == role })
	case !revoke && !has:
		next = append(slices.Clone(u.Permissions), role)
	default:
		return fmt.Sprintf("%s: nothing to do, role %s is %s", email, role, presence(has)), nil
	}

	if _, err := users.SetPermissions(ctx, u.ID, next); err != nil {
		return "", fmt.Errorf("update %s: %w", email, err)
	}
	if revoke {
		return fmt.Sprintf("%s: revoked %s", email, role), nil
	}
	return fmt.Sprintf("%s: granted %s", email, role), nil
}

func presence(has bool) string {
	if has {
		return "already granted"
	}
	return "not granted"
}

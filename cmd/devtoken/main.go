// devtoken выпускает HS256 токен для локального запуска с AUTH_PROVIDER=jwt
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_gateway/internal/auth"
	"github.com/shenikar/civic_gateway/internal/models"
)

func main() {
	_ = godotenv.Load()

	uid := flag.String("uid", "dev-user", "subject (uid) of the token")
	email := flag.String("email", "dev@example.com", "email claim")
	name := flag.String("name", "Dev User", "name claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logrus.Fatal("JWT_SECRET environment variable is required")
	}

	token, err := auth.SignDevToken(secret, models.Claims{
		UID:           *uid,
		Email:         *email,
		Name:          *name,
		EmailVerified: true,
		AuthTime:      time.Now().Unix(),
	}, *ttl)
	if err != nil {
		logrus.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(token)
}

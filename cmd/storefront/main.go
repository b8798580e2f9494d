package main

import (
	"os"

	"storefront/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意（本番は環境変数で渡す）
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

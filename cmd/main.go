package main

import (
	"fmt"

	"github.com/katiamach/weathercast/internal/api"
	"github.com/katiamach/weathercast/internal/config"
	"github.com/katiamach/weathercast/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weathercast api: %v", err))
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/DanRulev/easyflash.git/internal/client"
	"github.com/DanRulev/easyflash.git/internal/config"
	"github.com/DanRulev/easyflash.git/internal/deck"
	"github.com/DanRulev/easyflash.git/internal/importer"
	"go.uber.org/zap"
)

func main() {
	var (
		sheet      = flag.String("sheet", "", "sheet to read from an Excel workbook (default: first sheet)")
		skipHeader = flag.Bool("header", true, "first row is a header")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <words.xlsx|words.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	rows, err := importer.ReadRows(importer.ReadConfig{
		FilePath:   flag.Arg(0),
		SheetName:  *sheet,
		SkipHeader: *skipHeader,
	})
	if err != nil {
		logger.Fatal("failed to read file", zap.Error(err))
	}

	clients := client.InitClients(cfg.API.URL, cfg.App.Timeout)
	d := deck.New(clients, logger, deck.WithOptionalCategory(cfg.App.OptionalCategory))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(len(rows)+1)*cfg.App.Timeout)
	defer cancel()

	if err := d.Load(ctx); err != nil {
		logger.Fatal("failed to load deck", zap.Error(err))
	}

	result := importer.New(d, logger).Import(ctx, rows)

	fmt.Printf("processed: %d, created: %d, categories created: %d, skipped: %d\n",
		result.Processed, result.Created, result.CategoriesCreated, result.Skipped)
	for _, e := range result.Errors {
		fmt.Println(e)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

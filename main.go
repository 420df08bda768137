package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-batch-downloader/internal/batch"
	"github.com/ytget/yt-batch-downloader/internal/config"
	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/events"
	"github.com/ytget/yt-batch-downloader/internal/logging"
	"github.com/ytget/yt-batch-downloader/internal/search"
	"github.com/ytget/yt-batch-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-batch-downloader"
	AppName = "YouTube Batch Downloader"

	installTimeout = 2 * time.Minute
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(env.LogLevel)
	log := logging.For("main")
	log.Infof("%s v%s starting...", AppName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(ui.MainWindowSize)

	settings := config.NewSettings(myApp)

	ytdlpPath := env.YTDLPPath
	if env.YTDLPInstall && ytdlpPath == "" {
		installCtx, cancelInstall := context.WithTimeout(ctx, installTimeout)
		path, err := download.EnsureYTDLP(installCtx, logging.For("install"))
		cancelInstall()
		if err != nil {
			log.Warnf("yt-dlp install failed, falling back to PATH: %v", err)
		} else {
			ytdlpPath = path
		}
	}

	engineConfig := download.Config{
		YTDLPPath:        ytdlpPath,
		ProgressInterval: env.ProgressInterval,
		HTTPTimeout:      env.SearchTimeout,
		HTTPRetries:      env.HTTPRetries,
		ProxyURL:         env.ProxyURL,
		Logger:           logging.For("download"),
	}
	newEngine := func() (download.Engine, error) {
		return download.NewEngine(env.EngineName(settings.GetEngine()), engineConfig)
	}
	engine, err := newEngine()
	if err != nil {
		log.Fatalf("failed to create download engine: %v", err)
	}
	log.Infof("Download engine: %s", engine.Name())

	bus := events.NewBus(events.DefaultBufferSize)

	dispatcher := batch.NewDispatcher(engine, bus,
		batch.WithLogger(logging.For("batch")),
		batch.WithMaxParallel(settings.GetMaxParallelDownloads()),
	)

	provider, err := search.NewInnertube(search.InnertubeConfig{
		Timeout:  env.SearchTimeout,
		ProxyURL: env.ProxyURL,
		Logger:   logging.For("innertube"),
	})
	if err != nil {
		log.Fatalf("failed to create search client: %v", err)
	}
	searchSvc := search.NewService(provider, logging.For("search"))

	root := ui.NewRootUI(myWindow, myApp, ui.Deps{
		Settings:      settings,
		Dispatcher:    dispatcher,
		Search:        searchSvc,
		Poster:        bus,
		EngineFactory: newEngine,
		Logger:        logging.For("ui"),
		Context:       ctx,
	})

	// Every widget update happens on the Fyne goroutine
	go bus.Run(ctx, func(ev events.Event) {
		fyne.Do(func() { root.Apply(ev) })
	})

	myWindow.ShowAndRun()
}

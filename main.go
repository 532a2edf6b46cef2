package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/reusedev/mockup-hub/config"
	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/modules/ai"
	"github.com/reusedev/mockup-hub/internal/modules/batch"
	"github.com/reusedev/mockup-hub/internal/modules/export"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/mockup"
	"github.com/reusedev/mockup-hub/internal/modules/model"
	"github.com/reusedev/mockup-hub/internal/modules/preset"
	"github.com/reusedev/mockup-hub/internal/modules/queue"
	"github.com/reusedev/mockup-hub/internal/modules/storage/ali"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/reusedev/mockup-hub/internal/service/http"
	"github.com/reusedev/mockup-hub/internal/service/http/handler"
	"github.com/reusedev/mockup-hub/tools"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(tools.PanicOnError(tools.ReadFile(configPath)))
	logs.InitLogger()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	queue.InitBatchTaskQueue(ctx, wg)
	mysql.InitMySQL(config.GConfig.MySQL)
	mysql.DB.AutoMigrate(&model.SourceImage{}, &model.MockupImage{}, &model.SupplierInvokeHistory{}, &model.KVRecord{})
	if config.GConfig.StorageEnabled && config.GConfig.StorageSupplier == "ali_oss" {
		ali.InitOSS(config.GConfig.AliOss)
	}

	st := store.New()
	generator := mockup.NewGenerator(ai.OrderedTokens(config.GConfig))
	var opts []batch.Option
	if d, err := time.ParseDuration(config.GConfig.Generation.TickInterval); err == nil {
		opts = append(opts, batch.WithTickInterval(d))
	}
	if d, err := time.ParseDuration(config.GConfig.Generation.DisplayDelay); err == nil {
		opts = append(opts, batch.WithDisplayDelay(d))
	}
	runner := batch.NewRunner(st, generator, opts...)
	presets := preset.NewManager(preset.GormKV{})
	packager := export.NewPackager(export.DefaultFetch)
	handler.Init(st, runner, presets, packager)

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
		wg.Wait()
		os.Exit(0)
	}(osSignal)
	http.Serve(httpPort)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/focusdeck/focusdeck-push-server/api"
	"github.com/focusdeck/focusdeck-push-server/config"
	"github.com/focusdeck/focusdeck-push-server/db"
	"github.com/focusdeck/focusdeck-push-server/dispatch"
	"github.com/focusdeck/focusdeck-push-server/queue"
	"github.com/focusdeck/focusdeck-push-server/redisprovider"
	"github.com/focusdeck/focusdeck-push-server/repo/userrepo"
	"github.com/focusdeck/focusdeck-push-server/sender"
	"github.com/focusdeck/focusdeck-push-server/sender/provider/fcm"
)

var log = logger.NewNamed("main")

var (
	flagConfigFile = flag.String("c", "etc/config.yml", "path to config file")
	flagVersion    = flag.Bool("v", false, "show version and exit")
	flagHelp       = flag.Bool("h", false, "show help and exit")
)

func init() {
	app.AppName = "focusdeck-push"
}

func main() {
	flag.Parse()
	if *flagVersion {
		fmt.Println(app.AppName)
		fmt.Println(app.Version())
		return
	}
	if *flagHelp {
		fmt.Println("focusdeck push notification server")
		flag.PrintDefaults()
		return
	}

	conf, err := config.NewFromFile(*flagConfigFile)
	if err != nil {
		log.Fatal("can't open config file", zap.Error(err))
	}

	a := new(app.App)
	a.Register(conf).
		Register(metric.New()).
		Register(db.New()).
		Register(redisprovider.New()).
		Register(userrepo.New()).
		Register(queue.New()).
		Register(sender.New()).
		Register(fcm.New()).
		Register(dispatch.New()).
		Register(api.New())

	if err = a.Start(context.Background()); err != nil {
		log.Fatal("can't start app", zap.Error(err))
	}
	log.Info("app started", zap.String("version", a.Version()))

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGABRT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-exit
	log.Info("received exit signal, stop app...", zap.String("signal", fmt.Sprint(sig)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err = a.Close(ctx); err != nil {
		log.Fatal("close error", zap.Error(err))
	}
	log.Info("goodbye!")
	time.Sleep(time.Second / 3)
}

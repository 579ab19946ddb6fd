// client reports the current time to a bgp_info service once and prints the
// service's answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"timereport/internal/config"
	"timereport/internal/discovery"
	"timereport/internal/logging"
	"timereport/internal/reporter"
)

func main() {
	path := flag.String("config", "config.ini", "path to config.ini")
	flag.Parse()

	if err := run(context.Background(), *path, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, stdout io.Writer) error {
	cf, err := config.Load(path)
	if err != nil {
		return err
	}
	conn, err := cf.Connection()
	if err != nil {
		return err
	}
	log, err := logging.New(cf.Log())
	if err != nil {
		return err
	}
	defer log.Sync()

	nc, err := cf.Nacos()
	if err != nil {
		return err
	}
	if nc.Enabled {
		naming, err := discovery.NewNamingClient(nc)
		if err != nil {
			return err
		}
		conn, err = discovery.Resolve(naming, cf.Service(), nc)
		if err != nil {
			return err
		}
		log.Debug("endpoint discovered", zap.String("host", conn.Host), zap.String("port", conn.Port))
	}

	sess, err := reporter.Setup(conn, log)
	if err != nil {
		return err
	}
	defer sess.Close()

	return sess.Run(ctx, reporter.SystemClock{}, stdout)
}

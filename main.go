// main.go runs a development bgp_info server for the reporting client.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"timereport/internal/aggregator"
	"timereport/internal/bgpinfo"
	"timereport/internal/config"
	"timereport/internal/discovery"
	"timereport/internal/logging"
)

func main() {
	path := flag.String("config", "config.ini", "path to config.ini")
	advertise := flag.String("advertise", "127.0.0.1", "IP registered in nacos")
	flag.Parse()

	cf, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cf.Log())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	addr, err := cf.Listen()
	if err != nil {
		log.Fatal("bad listen address", zap.Error(err))
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}

	s := grpc.NewServer()
	bgpinfo.RegisterBgpInfoServer(s, &aggregator.Server{Log: log})
	reflection.Register(s)

	nc, err := cf.Nacos()
	if err != nil {
		log.Fatal("bad nacos config", zap.Error(err))
	}
	if nc.Enabled {
		naming, err := discovery.NewNamingClient(nc)
		if err != nil {
			log.Fatal("failed to create nacos client", zap.Error(err))
		}
		inst := discovery.Instance{
			IP:      *advertise,
			Port:    uint64(lis.Addr().(*net.TCPAddr).Port),
			Service: cf.Service(),
		}
		if err := discovery.Register(naming, inst, nc); err != nil {
			log.Fatal("failed to register service to nacos", zap.Error(err))
		}
		log.Info("service registered to nacos", zap.String("service", inst.Service))
		defer func() {
			if err := discovery.Deregister(naming, inst, nc); err != nil {
				log.Warn("deregister failed", zap.Error(err))
			}
		}()
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		s.GracefulStop()
	}()

	log.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	if err := s.Serve(lis); err != nil {
		log.Error("failed to serve", zap.Error(err))
	}
}

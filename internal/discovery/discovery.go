// Package discovery locates and registers bgp_info endpoints in nacos.
package discovery

import (
	"strconv"

	"github.com/nacos-group/nacos-sdk-go/clients"
	"github.com/nacos-group/nacos-sdk-go/clients/naming_client"
	"github.com/nacos-group/nacos-sdk-go/common/constant"
	"github.com/nacos-group/nacos-sdk-go/model"
	"github.com/nacos-group/nacos-sdk-go/vo"
	"github.com/pkg/errors"

	"timereport/internal/config"
)

// Selector is the part of the nacos naming client used to resolve an
// endpoint.
type Selector interface {
	SelectOneHealthyInstance(param vo.SelectOneHealthInstanceParam) (*model.Instance, error)
}

// Registrar is the part of the nacos naming client used by the server.
type Registrar interface {
	RegisterInstance(param vo.RegisterInstanceParam) (bool, error)
	DeregisterInstance(param vo.DeregisterInstanceParam) (bool, error)
}

// Instance is one registered bgp_info endpoint.
type Instance struct {
	IP      string
	Port    uint64
	Service string
	Weight  float64
}

func NewNamingClient(cfg config.Nacos) (naming_client.INamingClient, error) {
	serverConfigs := []constant.ServerConfig{
		*constant.NewServerConfig(cfg.Server, cfg.Port),
	}

	clientConfig := *constant.NewClientConfig(
		constant.WithNamespaceId(cfg.Namespace),
		constant.WithTimeoutMs(cfg.TimeoutMs),
		constant.WithNotLoadCacheAtStart(true),
		constant.WithLogDir(cfg.LogDir),
		constant.WithCacheDir(cfg.CacheDir),
	)

	client, err := clients.NewNamingClient(
		vo.NacosClientParam{
			ClientConfig:  &clientConfig,
			ServerConfigs: serverConfigs,
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create nacos naming client")
	}
	return client, nil
}

// Resolve picks one healthy instance of service and returns it as the
// connection endpoint.
func Resolve(sel Selector, service string, cfg config.Nacos) (config.ConnectionConfig, error) {
	inst, err := sel.SelectOneHealthyInstance(vo.SelectOneHealthInstanceParam{
		ServiceName: service,
		GroupName:   cfg.Group,
		Clusters:    []string{cfg.Cluster},
	})
	if err != nil {
		return config.ConnectionConfig{}, errors.Wrapf(err, "no healthy instance of %s", service)
	}
	if inst == nil || inst.Ip == "" || inst.Port == 0 {
		return config.ConnectionConfig{}, errors.Errorf("nacos returned an incomplete instance of %s", service)
	}
	return config.ConnectionConfig{
		Host:              inst.Ip,
		Port:              strconv.FormatUint(inst.Port, 10),
		TransportSecurity: config.SecurityNone,
	}, nil
}

func Register(r Registrar, inst Instance, cfg config.Nacos) error {
	weight := inst.Weight
	if weight == 0 {
		weight = 10
	}
	ok, err := r.RegisterInstance(vo.RegisterInstanceParam{
		Ip:          inst.IP,
		Port:        inst.Port,
		ServiceName: inst.Service,
		Weight:      weight,
		Enable:      true,
		Healthy:     true,
		Ephemeral:   true,
		ClusterName: cfg.Cluster,
		GroupName:   cfg.Group,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to register %s", inst.Service)
	}
	if !ok {
		return errors.Errorf("nacos refused registration of %s", inst.Service)
	}
	return nil
}

func Deregister(r Registrar, inst Instance, cfg config.Nacos) error {
	_, err := r.DeregisterInstance(vo.DeregisterInstanceParam{
		Ip:          inst.IP,
		Port:        inst.Port,
		ServiceName: inst.Service,
		Cluster:     cfg.Cluster,
		GroupName:   cfg.Group,
		Ephemeral:   true,
	})
	return errors.Wrapf(err, "failed to deregister %s", inst.Service)
}

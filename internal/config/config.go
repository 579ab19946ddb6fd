// Package config reads the INI file shared by the reporting client and the
// development aggregation server.
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	ini "gopkg.in/ini.v1"
)

const (
	// SecurityNone selects a plaintext, unauthenticated gRPC channel.
	SecurityNone = "none"

	DefaultService = "grpc.bgpinfo.service"
	DefaultGroup   = "DEFAULT_GROUP"
	DefaultCluster = "DEFAULT"
)

// ConnectionConfig is the remote endpoint the client reports to. Both fields
// are kept as opaque strings.
type ConnectionConfig struct {
	Host string
	Port string

	// TransportSecurity is always SecurityNone today.
	TransportSecurity string
}

type Log struct {
	File  string
	Level string
}

type Nacos struct {
	Enabled   bool
	Server    string
	Port      uint64
	Namespace string
	Group     string
	Cluster   string
	TimeoutMs uint64
	LogDir    string
	CacheDir  string
}

// File is a loaded configuration source.
type File struct {
	cf *ini.File
}

// Load reads a configuration source. source is anything ini.Load accepts:
// a file name or raw []byte contents.
func Load(source interface{}) (*File, error) {
	if name, ok := source.(string); ok && strings.TrimSpace(name) == "" {
		return nil, &ConfigurationError{Err: errors.New("no configuration source given")}
	}
	cf, err := ini.Load(source)
	if err != nil {
		return nil, &ConfigurationError{Err: errors.Wrap(err, "failed to read config file")}
	}
	return &File{cf: cf}, nil
}

func (f *File) value(section, key string) string {
	sec, err := f.cf.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return ""
	}
	return strings.TrimSpace(sec.Key(key).String())
}

func (f *File) required(section, key string) (string, error) {
	v := f.value(section, key)
	if v == "" {
		return "", &ConfigurationError{Section: section, Key: key, Err: ErrMissingKey}
	}
	return v, nil
}

// Connection resolves the [grpc] endpoint. It fails unless both server and
// port are present and non-empty.
func (f *File) Connection() (ConnectionConfig, error) {
	host, err := f.required("grpc", "server")
	if err != nil {
		return ConnectionConfig{}, err
	}
	port, err := f.required("grpc", "port")
	if err != nil {
		return ConnectionConfig{}, err
	}
	sec := f.value("grpc", "transport_security")
	switch strings.ToLower(sec) {
	case "", SecurityNone:
		sec = SecurityNone
	default:
		return ConnectionConfig{}, &ConfigurationError{
			Section: "grpc",
			Key:     "transport_security",
			Err:     fmt.Errorf("unsupported value %q", sec),
		}
	}
	return ConnectionConfig{Host: host, Port: port, TransportSecurity: sec}, nil
}

// Listen returns the server listen address, ":{port}".
func (f *File) Listen() (string, error) {
	port, err := f.required("grpc", "port")
	if err != nil {
		return "", err
	}
	return ":" + port, nil
}

// Service is the name used for nacos registration and discovery.
func (f *File) Service() string {
	if s := f.value("grpc", "service"); s != "" {
		return s
	}
	return DefaultService
}

func (f *File) Log() Log {
	l := Log{File: f.value("log", "file"), Level: f.value("log", "level")}
	if l.Level == "" {
		l.Level = "info"
	}
	return l
}

// Nacos returns the [nacos] section. A disabled or absent section is not an
// error; an enabled one must name its server.
func (f *File) Nacos() (Nacos, error) {
	sec, err := f.cf.GetSection("nacos")
	if err != nil {
		return Nacos{}, nil
	}
	n := Nacos{
		Enabled:   sec.Key("enabled").MustBool(false),
		Server:    f.value("nacos", "server"),
		Port:      sec.Key("port").MustUint64(8848),
		Namespace: f.value("nacos", "namespace"),
		Group:     f.value("nacos", "group"),
		Cluster:   f.value("nacos", "cluster"),
		TimeoutMs: sec.Key("timeout_ms").MustUint64(5000),
		LogDir:    f.value("nacos", "log_dir"),
		CacheDir:  f.value("nacos", "cache_dir"),
	}
	if !n.Enabled {
		return n, nil
	}
	if n.Server == "" {
		return Nacos{}, &ConfigurationError{Section: "nacos", Key: "server", Err: ErrMissingKey}
	}
	if n.Namespace == "" {
		n.Namespace = "public"
	}
	if n.Group == "" {
		n.Group = DefaultGroup
	}
	if n.Cluster == "" {
		n.Cluster = DefaultCluster
	}
	if n.LogDir == "" {
		n.LogDir = "./nacos/log"
	}
	if n.CacheDir == "" {
		n.CacheDir = "./nacos/cache"
	}
	return n, nil
}

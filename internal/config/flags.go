package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-contract-guard/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-disable-static disable validation of provisioned instances
//	-disable-dynamic disable validation of method calls
//	-disable-prefilter validate every provisioned instance
//	-locale violation message locale
//	-realm account realm
//	-min-age minimal account age
//	-storage-driver account storage driver (memory, postgres, sqlite3)
//	-d account storage DSN
//	-token-sign-key session token signing key
//	-token-duration session token lifetime (e.g., "1h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var disableStatic, disableDynamic, disablePrefilter bool
	var locale string
	var realm string
	var minAge int
	var storageDriver, storageDSN string
	var tokenSignKey string
	var tokenDuration time.Duration

	fs := flag.NewFlagSet("go-contract-guard", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&disableStatic, "disable-static", false, "Disable validation of provisioned instances")
	fs.BoolVar(&disableDynamic, "disable-dynamic", false, "Disable validation of method calls")
	fs.BoolVar(&disablePrefilter, "disable-prefilter", false, "Validate every provisioned instance")
	fs.StringVar(&locale, "locale", "", "Violation message locale")
	fs.StringVar(&realm, "realm", "", "Account realm")
	fs.IntVar(&minAge, "min-age", 0, "Minimal account age")
	fs.StringVar(&storageDriver, "storage-driver", "", "Account storage driver (memory, postgres, sqlite3)")
	fs.StringVar(&storageDSN, "d", "", "Account storage DSN")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token lifetime (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Validation: Validation{
			DisableStatic:    disableStatic,
			DisableDynamic:   disableDynamic,
			DisablePrefilter: disablePrefilter,
			Locale:           locale,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Account: Account{
			Realm:  realm,
			MinAge: minAge,
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    storageDSN,
		},
		Auth: Auth{
			TokenSignKey:  models.Secret(tokenSignKey),
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

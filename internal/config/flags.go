package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-sqlite sqlite database file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-user basic auth user name
//	-auth-password-hash bcrypt hash of the basic auth password
//	-holidays-api-url holiday provider base URL
//	-holidays-api-key holiday provider API key
//	-holidays-country holiday provider country code
//	-holidays-year holiday provider year
//	-webhook-url ntfy-compatible topic URL for fired reminders
//	-webhook-token webhook bearer token
//	-sweep-schedule cron expression for the reminder sweep worker
//	-adapter-address planner API base URL used by the client
//	-adapter-timeout client request timeout
//	-adapter-auth-user basic auth user name sent by the client
//	-adapter-auth-password basic auth password sent by the client
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var sqlitePath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var authUser string
	var authPasswordHash string
	var holidaysAPIURL string
	var holidaysAPIKey string
	var holidaysCountry string
	var holidaysYear int
	var webhookURL string
	var webhookToken string
	var sweepSchedule string
	var adapterAddress string
	var adapterTimeout time.Duration
	var adapterAuthUser string
	var adapterAuthPassword string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&authUser, "auth-user", "", "Basic auth user name")
	flag.StringVar(&authPasswordHash, "auth-password-hash", "", "Bcrypt hash of the basic auth password")
	flag.StringVar(&holidaysAPIURL, "holidays-api-url", "", "Holiday provider base URL")
	flag.StringVar(&holidaysAPIKey, "holidays-api-key", "", "Holiday provider API key")
	flag.StringVar(&holidaysCountry, "holidays-country", "", "Holiday provider country code")
	flag.IntVar(&holidaysYear, "holidays-year", 0, "Holiday provider year")
	flag.StringVar(&webhookURL, "webhook-url", "", "Webhook topic URL for fired reminders")
	flag.StringVar(&webhookToken, "webhook-token", "", "Webhook bearer token")
	flag.StringVar(&sweepSchedule, "sweep-schedule", "", "Cron expression for the reminder sweep worker")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Planner API base URL used by the client")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	flag.StringVar(&adapterAuthUser, "adapter-auth-user", "", "Basic auth user name sent by the client")
	flag.StringVar(&adapterAuthPassword, "adapter-auth-password", "", "Basic auth password sent by the client")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			RequestTimeout:   requestTimeout,
			AuthUser:         authUser,
			AuthPasswordHash: authPasswordHash,
		},
		Holidays: Holidays{
			APIURL:  holidaysAPIURL,
			APIKey:  holidaysAPIKey,
			Country: holidaysCountry,
			Year:    holidaysYear,
		},
		Notify: Notify{
			WebhookURL:   webhookURL,
			WebhookToken: webhookToken,
		},
		Workers: Workers{
			SweepSchedule: sweepSchedule,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
			AuthUser:       adapterAuthUser,
			AuthPassword:   adapterAuthPassword,
		},
		JSONFilePath: jsonConfigPath,
	}
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

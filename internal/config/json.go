package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		AuthUser         string   `json:"auth_user"`
		AuthPasswordHash string   `json:"auth_password_hash"`
	} `json:"server,omitempty"`

	Holidays struct {
		APIURL  string `json:"api_url"`
		APIKey  string `json:"api_key"`
		Country string `json:"country"`
		Year    int    `json:"year"`
	} `json:"holidays,omitempty"`

	Notify struct {
		WebhookURL   string   `json:"webhook_url"`
		WebhookToken string   `json:"webhook_token"`
		Timeout      Duration `json:"timeout"`
	} `json:"notify,omitempty"`

	Workers struct {
		SweepSchedule string `json:"sweep_schedule"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthUser       string   `json:"auth_user"`
		AuthPassword   string   `json:"auth_password"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: jsonCfg.Storage.SQLite.Path,
			},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			AuthUser:         jsonCfg.Server.AuthUser,
			AuthPasswordHash: jsonCfg.Server.AuthPasswordHash,
		},
		Holidays: Holidays{
			APIURL:  jsonCfg.Holidays.APIURL,
			APIKey:  jsonCfg.Holidays.APIKey,
			Country: jsonCfg.Holidays.Country,
			Year:    jsonCfg.Holidays.Year,
		},
		Notify: Notify{
			WebhookURL:   jsonCfg.Notify.WebhookURL,
			WebhookToken: jsonCfg.Notify.WebhookToken,
			Timeout:      time.Duration(jsonCfg.Notify.Timeout),
		},
		Workers: Workers{
			SweepSchedule: jsonCfg.Workers.SweepSchedule,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			AuthUser:       jsonCfg.Adapter.AuthUser,
			AuthPassword:   jsonCfg.Adapter.AuthPassword,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

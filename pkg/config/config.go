package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Webhook WebhookConfig
	Cache   CacheConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig rutas del almacenamiento en disco.
// DataDir contiene las colecciones JSON (una archivo por clave);
// ContactsFile es el archivo de contactos indexado por teléfono.
type StorageConfig struct {
	DataDir      string
	ContactsFile string
}

// WebhookConfig configuración de los proxies de solo lectura hacia los
// webhooks externos (pacientes, métodos de pago, recetas, canales, stats).
type WebhookConfig struct {
	BaseURL    string
	CanalesURL string        // endpoint del CRM de WhatsApp, host distinto al resto
	Timeout    time.Duration // por petición; no hay reintentos
}

// CacheConfig tiempos de vida de los caches en proceso.
type CacheConfig struct {
	SolicitudesTTL time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DATA_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "zogen-backoffice"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			DataDir:      getString(v, "STORAGE_DATA_DIR", "./data"),
			ContactsFile: getString(v, "STORAGE_CONTACTS_FILE", "./data/contacts.json"),
		},
		Webhook: WebhookConfig{
			BaseURL:    getString(v, "WEBHOOK_BASE_URL", ""),
			CanalesURL: getString(v, "WEBHOOK_CANALES_URL", ""),
			Timeout:    time.Duration(getInt(v, "WEBHOOK_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Cache: CacheConfig{
			SolicitudesTTL: time.Duration(getInt(v, "CACHE_SOLICITUDES_TTL_SECONDS", 60)) * time.Second,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config contiene la configuración de la aplicación
type Config struct {
	Port              string        // Puerto HTTP
	RedisAddr         string        // Dirección de Redis; vacío usa cache en memoria
	CacheTTL          time.Duration // Expiración de reportes cacheados
	RateLimitCapacity int           // Requests permitidos por ventana por IP
	RateLimitWindow   time.Duration // Ventana del rate limiter
}

// Load carga la configuración desde el archivo .env y el entorno
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("archivo .env no encontrado, usando solo variables de entorno")
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		ttl = time.Hour
	}

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		window = time.Minute
	}

	capacity, err := strconv.Atoi(getEnv("RATE_LIMIT_CAPACITY", "30"))
	if err != nil || capacity <= 0 {
		capacity = 30
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          ttl,
		RateLimitCapacity: capacity,
		RateLimitWindow:   window,
	}
}

// getEnv obtiene una variable de entorno o devuelve el valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

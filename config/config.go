package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

// DefaultOTPTTL is how long a pending OTP challenge stays redeemable before it
// is treated as not found
const DefaultOTPTTL = 10 * time.Minute

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	OpsEmail     string
	OTPTTL       time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		OpsEmail:     os.Getenv("OPS_EMAIL"),
		OTPTTL:       otpTTL(),
	}

}

func otpTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("OTP_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return DefaultOTPTTL
	}
	return time.Duration(minutes) * time.Minute
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: err.Error()}})
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
	defaultDotEnvFile         = ".env"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Storage configures the object store holding profile pictures.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Onboarding *OnboardingConfig `json:"onboarding" yaml:"onboarding"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Directory *DirectoryConfig `json:"directory" yaml:"directory"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for profile share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Maintenance *MaintenanceConfig `json:"maintenance" yaml:"maintenance"`

	Seed *SeedConfig `json:"seed" yaml:"seed"`
}

type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// GoogleOAuthConfig holds the OAuth client used for both ID token audience
// checks and the browser code flow of the admin console.
type GoogleOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AdminEmails       []string      `json:"adminEmails" yaml:"adminEmails"`
	CookieSecure      bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. s3://bucket?region=..., gs://bucket, file:///tmp/media or mem://.
	BucketURL       string        `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL   string        `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	UploadURLExpiry time.Duration `json:"uploadUrlExpiry" yaml:"uploadUrlExpiry"`
}

type OnboardingConfig struct {
	// Store selects the draft backend: "memory" or "redis".
	Store      string        `json:"store" yaml:"store"`
	DraftTTL   time.Duration `json:"draftTTL" yaml:"draftTTL"`
	SurveySlug string        `json:"surveySlug" yaml:"surveySlug"`
	DOBMin     string        `json:"dobMin" yaml:"dobMin"`
	DOBMax     string        `json:"dobMax" yaml:"dobMax"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type DirectoryConfig struct {
	PageSize      int    `json:"pageSize" yaml:"pageSize"`
	AdminPageSize int    `json:"adminPageSize" yaml:"adminPageSize"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

type RateLimitConfig struct {
	UsernameChecksPerSecond float64 `json:"usernameChecksPerSecond" yaml:"usernameChecksPerSecond"`
	Burst                   int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MaintenanceConfig holds cron specs for background cleanup jobs.
type MaintenanceConfig struct {
	RefreshTokenPurgeSpec string `json:"refreshTokenPurgeSpec" yaml:"refreshTokenPurgeSpec"`
	DraftPurgeSpec        string `json:"draftPurgeSpec" yaml:"draftPurgeSpec"`
}

// SeedConfig holds reference data loaded by cmd/seed.
type SeedConfig struct {
	AdminEmails []string            `json:"adminEmails" yaml:"adminEmails"`
	Locations   map[string][]string `json:"locations" yaml:"locations"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv populates the process environment from a .env file when one exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = 7 * 24 * time.Hour
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.UploadURLExpiry <= 0 {
		cfg.Storage.UploadURLExpiry = time.Hour
	}

	if cfg.Onboarding == nil {
		cfg.Onboarding = &OnboardingConfig{}
	}
	if cfg.Onboarding.Store == "" {
		cfg.Onboarding.Store = "memory"
	}
	if cfg.Onboarding.DraftTTL <= 0 {
		cfg.Onboarding.DraftTTL = 24 * time.Hour
	}
	if cfg.Onboarding.SurveySlug == "" {
		cfg.Onboarding.SurveySlug = "membershipApplication"
	}
	if cfg.Onboarding.DOBMin == "" {
		cfg.Onboarding.DOBMin = "1900-01-01"
	}
	if cfg.Onboarding.DOBMax == "" {
		cfg.Onboarding.DOBMax = "2022-01-01"
	}

	if cfg.Directory == nil {
		cfg.Directory = &DirectoryConfig{}
	}
	if cfg.Directory.PageSize <= 0 {
		cfg.Directory.PageSize = 12
	}
	if cfg.Directory.AdminPageSize <= 0 {
		cfg.Directory.AdminPageSize = 10
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.UsernameChecksPerSecond <= 0 {
		cfg.RateLimit.UsernameChecksPerSecond = 5
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 10
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Maintenance == nil {
		cfg.Maintenance = &MaintenanceConfig{}
	}
	if cfg.Maintenance.RefreshTokenPurgeSpec == "" {
		cfg.Maintenance.RefreshTokenPurgeSpec = "@hourly"
	}
	if cfg.Maintenance.DraftPurgeSpec == "" {
		cfg.Maintenance.DraftPurgeSpec = "@every 10m"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

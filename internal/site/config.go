package site

import "strings"

// Config is the application section of the environment.
type Config struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	Name          string `env:"APP_NAME" envDefault:"toolsite"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en" validate:"required,bcp47_language_tag"`
	// AssetsURL is where the client scripts live; tool pages load
	// {AssetsURL}/tools/{script}.js.
	AssetsURL  string `env:"ASSETS_URL" envDefault:"/assets"`
	ContentDir string `env:"CONTENT_DIR"`
	ShareQR    bool   `env:"SHARE_QR" envDefault:"true"`
	// BuildID is folded into page cache keys so a deploy with new templates
	// does not serve pages cached by the previous build.
	BuildID string `env:"BUILD_ID"`
}

func (c Config) baseURL() string {
	return strings.TrimSuffix(c.BaseURL, "/")
}

func (c Config) scriptURL(name string) string {
	return strings.TrimSuffix(c.AssetsURL, "/") + "/tools/" + name + ".js"
}

package config

type Config struct {
	Harvest struct {
		// 岗位列表页URL,查询参数中的筛选条件会原样带到每一页
		Url string `json:"url" validate:"required,url"`
		// 监听的api,响应URL包含该子串即视为目标响应
		ApiPattern         string  `json:"api_pattern" validate:"required"`
		Limit              int     `json:"limit" validate:"min=1"`
		PageTimeoutSeconds int     `json:"page_timeout_seconds" validate:"min=1"`
		PagesPerSecond     float64 `json:"pages_per_second" validate:"min=0"`
		Driver             string  `json:"driver" validate:"oneof=chromedp rod"`
	} `json:"harvest"`

	Store struct {
		OutputDir string `json:"output_dir" validate:"required"`
	} `json:"store"`

	Log struct {
		Level   string `json:"level" validate:"omitempty,oneof=debug info warn error"`
		NoColor bool   `json:"no_color"`
	} `json:"log"`

	Elasticsearch struct {
		Enabled  bool   `json:"enabled"`
		Username string `json:"username"`
		Password string `json:"password"`
		Address  string `json:"address" validate:"required_if=Enabled true"`
	} `json:"elasticsearch"`

	Rod struct {
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
		Leakless             bool   `json:"leakless"`
		Bin                  string `json:"bin"`
		Trace                bool   `json:"trace"`
	} `json:"rod"`

	Chromedp struct {
		// 浏览器生命周期(秒),0表示不限制
		LifeTime             int    `json:"life_time" validate:"min=0"`
		UserDataDir          string `json:"user_data_dir"`
		Headless             bool   `json:"headless"`
		DisableBlinkFeatures string `json:"disable_blink_features"`
		Incognito            bool   `json:"incognito"`
		DisableDevShmUsage   bool   `json:"disable_dev_shm_usage"`
		NoSandbox            bool   `json:"no_sandbox"`
		UserAgent            string `json:"user_agent"`
	} `json:"chromedp"`

	Embedder struct {
		Enabled bool   `json:"enabled"`
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Model   string `json:"model" validate:"required_if=Enabled true"`
	} `json:"embedder"`
}

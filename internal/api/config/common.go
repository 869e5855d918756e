package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// AuthConfig 鉴权配置
// Secret 为编辑端共享口令（Bearer），未配置时回退到不安全默认值
type AuthConfig struct {
	Secret            string `mapstructure:"secret"`
	JWTSecret         string `mapstructure:"jwt_secret"`
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// AssetsConfig 上传资源对外访问配置
type AssetsConfig struct {
	PublicDomain string `mapstructure:"public_domain"`
}

// LLMConfig 写作助手模型配置
type LLMConfig struct {
	URL    string `mapstructure:"url"`
	Model  string `mapstructure:"model"`
	ApiKey string `mapstructure:"api_key"`
}

// LogstashConfig 远程日志配置，Address 为空则只输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

package config

import (
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Task   TaskConfig   `mapstructure:"task"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ChainConfig holds the ledger connection and the deployed contract set.
type ChainConfig struct {
	ChainId        int64  `mapstructure:"chain_id"`        // chain id used for tx signing
	RpcUrl         string `mapstructure:"rpc_url"`         // RPC node URL
	PrivateKey     string `mapstructure:"private_key"`     // signing key of the connected identity; empty = guest session
	FactoryAddress string `mapstructure:"factory_address"` // campaign factory deployed for this environment
	TokenAddress   string `mapstructure:"token_address"`   // CFD reward token address
	Confirmations  int    `mapstructure:"confirmations"`   // confirmations to wait after inclusion
	BytecodePath   string `mapstructure:"bytecode_path"`   // factory creation bytecode, needed for redeployment only
}

type TaskConfig struct {
	RefreshInterval int `mapstructure:"refresh_interval"` // seconds between view refreshes
	MonitorInterval int `mapstructure:"monitor_interval"` // seconds between factory log polls
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // stdout, file
	File   string `mapstructure:"file"`   // log file path when output is file
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/chainfund")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("chain.chain_id", 11155111)
	viper.SetDefault("chain.rpc_url", "http://localhost:8545")
	viper.SetDefault("chain.confirmations", 1)
	viper.SetDefault("chain.bytecode_path", "contracts/factory_bytecode.hex")
	viper.SetDefault("task.refresh_interval", 30)
	viper.SetDefault("task.monitor_interval", 60)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}

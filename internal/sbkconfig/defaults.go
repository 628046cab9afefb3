package sbkconfig

// Defaults returns the default configuration: a 2-of-3 scheme, a
// 1-second KDF target, and the "disabled" wallet name spec.md §4.9
// substitutes when the caller supplies none.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    DefaultHome(),
		Scheme: SchemeConfig{
			Threshold: 2,
			Shares:    3,
		},
		KDF: KDFConfig{
			TargetSeconds: 1.0,
			MemoryPercent: 25,
		},
		Wallet: WalletConfig{
			DefaultName: "disabled",
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "",
		},
	}
}

// Package config loads hxo.json and environment overrides for the hxo CLI.
//
// # Configuration File Structure
//
//	{
//	  "log": {"level": "info", "format": "text"},
//	  "render": {"pretty": false, "indent": "  "},
//	  "i18n": {"locale": "en", "cacheSize": 512},
//	  "metrics": {"enabled": false, "namespace": "hxo"},
//	  "bench": {"iterations": 1000, "width": 10}
//	}
//
// Every field is optional. After the file, variables from a .env file next
// to it and then the process environment are applied:
//
//	HXO_LOG_LEVEL          debug, info, warn or error
//	HXO_LOG_FORMAT         text or json
//	HXO_RENDER_PRETTY      true or false
//	HXO_LOCALE             initial i18n locale
//	HXO_METRICS_NAMESPACE  Prometheus namespace
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Logger(os.Stderr)
package config

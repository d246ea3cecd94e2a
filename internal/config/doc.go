// Package config loads and validates family configuration.
//
// Configuration comes from a YAML file (Load, Parse) with environment
// overrides layered on top (FromEnv):
//
//	version: 1
//	session:
//	  variants: ["1", "2"]
//	server:
//	  listen_addr: ":8080"
//	  read_header_timeout: "5s"
//	  shutdown_timeout: "5s"
//	logging:
//	  level: info
//	  format: console
//
// Environment variables: FAMILY_VARIANTS (comma list), FAMILY_LISTEN_ADDR,
// FAMILY_LOG_LEVEL, FAMILY_LOG_FORMAT. FAMILY_CONFIG names the file used by
// the convenience entry points (ResolvePath).
//
// The variant list is always an explicit choice made by whoever writes the
// file or sets the variable. Nothing here discovers factories.
package config

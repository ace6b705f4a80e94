// Package config loads vassert.yaml.
//
// The file lives at the project root and is found by walking up from the
// working directory. Every field is optional.
//
// # Configuration File Structure
//
//	color: auto          # auto, always or never
//	failFast: true       # false keeps the test running after a failure
//	label:
//	  element: element
//	  fragment: rendered fragment
//	markup:
//	  ignoreComments: true
//	  strictClassOrder: false
//	  ignoreAttributes: [data-hid]
//	log:
//	  level: warn        # debug, info, warn, error or off
//	metrics:
//	  enabled: false
//	  namespace: vassert
//	tracing:
//	  enabled: false
//	  tracerName: vassert
//
// VASSERT_COLOR and VASSERT_LOG_LEVEL override color and log.level.
//
// # Usage
//
//	cfg, err := config.LoadOrDefault(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config

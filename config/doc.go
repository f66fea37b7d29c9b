// Package config loads the logkit configuration from a YAML file and the
// environment using cleanenv.
//
// Example file:
//
//	logger:
//	  level: debug
//	  service_name: orders
//	  loggers:
//	    orders.Service: warning
//	metrics:
//	  application_metrics_address: ":9091"
//	interceptor:
//	  invocation_id: true
//	  fields:
//	    region: eu-1
//	catalog: /etc/logkit/catalog.yaml
//
// Environment variables override file values; Usage lists them.
package config

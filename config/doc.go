// Package config loads and saves provider options as YAML and
// assembles loggers from them.
//
// A settings file names the category, the minimum level, the
// timestamp mode, and zero or more sinks:
//
//	category: orders
//	level: debug
//	utc: true
//	console:
//	  async: true
//	file:
//	  path: /var/log/orders.log
//	  max_size: 10485760
//	  max_backups: 5
//
// Load validates on read, Save validates on write, and Build turns a
// validated Config into a ready *logger.Logger with its own scope
// stack.
package config

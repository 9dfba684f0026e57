// Package config loads and validates quill.json, the project
// configuration file. Every field has a sensible default, so a
// missing or minimal file still yields a usable Config.
package config

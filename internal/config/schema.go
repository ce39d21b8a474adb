package config

import (
	"encoding/json"
)

// GenerateJSONSchema describes config.yml for editor completion.
func GenerateJSONSchema() ([]byte, error) {
	keyList := func(desc string, def []string) map[string]any {
		return map[string]any{
			"type":        "array",
			"description": desc,
			"items":       map[string]any{"type": "string"},
			"minItems":    1,
			"default":     def,
		}
	}

	defaults := DefaultConfig()
	schema := map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"title":                "Seer Configuration",
		"description":          "Configuration schema for the seer tarot shell",
		"type":                 "object",
		"additionalProperties": false,

		"properties": map[string]any{
			"config_version": map[string]any{
				"type":    "string",
				"default": CurrentVersion,
			},

			"general": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"data_dir": map[string]any{
						"type":        "string",
						"description": "Directory holding Data/users.json and Data/readings.json",
						"default":     defaults.General.DataDir,
					},
					"log_file": map[string]any{
						"type":        "string",
						"description": "Log file path; empty logs to <data_dir>/seer.log",
					},
					"log_level": map[string]any{
						"type":    "string",
						"enum":    []string{"trace", "debug", "info", "warn", "error"},
						"default": defaults.General.LogLevel,
					},
				},
			},

			"display": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"backend": map[string]any{
						"type":        "string",
						"description": "screen draws full-screen with tcell; stream writes ANSI sequences to the tty",
						"enum":        []string{BackendScreen, BackendStream},
						"default":     defaults.Display.Backend,
					},
					"prefix": map[string]any{
						"type":        "string",
						"description": "Marker drawn before the hovered option",
						"minLength":   1,
						"default":     defaults.Display.Prefix,
					},
					"typing_speed": map[string]any{
						"type":        "string",
						"description": "Typewriter delay per character, as a Go duration",
						"pattern":     `^[0-9.]+(ns|us|µs|ms|s)$`,
						"default":     defaults.Display.TypingSpeed.String(),
					},
				},
			},

			"keys": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"up":     keyList("Keys moving the hover up", defaults.Keys.Up),
					"down":   keyList("Keys moving the hover down", defaults.Keys.Down),
					"select": keyList("Keys confirming the hovered option", defaults.Keys.Select),
					"cancel": keyList("Keys leaving the menu", defaults.Keys.Cancel),
				},
			},

			"menus": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"confirm_on_escape": map[string]any{
						"type":        "boolean",
						"description": "Ask before leaving the main menu with a cancel key",
						"default":     defaults.Menus.ConfirmOnEscape,
					},
				},
			},
		},
	}

	return json.MarshalIndent(schema, "", "  ")
}

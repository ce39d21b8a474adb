package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
)

// GenerateInteractive walks through the main settings on in/out and saves
// the result to configPath. Empty answers keep the default.
func GenerateInteractive(in io.Reader, out io.Writer, configPath string) (*Config, error) {
	f := output.NewFormatter(out)
	reader := bufio.NewReader(in)
	config := DefaultConfig()

	f.Header("Seer Configuration Setup")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Data directory [%s]: ", config.General.DataDir)
	if dir := readLine(reader); dir != "" {
		config.General.DataDir = dir
	}

	for {
		fmt.Fprintf(out, "Display backend (screen/stream) [%s]: ", config.Display.Backend)
		backend := strings.ToLower(readLine(reader))
		if backend == "" {
			break
		}
		if backend == BackendScreen || backend == BackendStream {
			config.Display.Backend = backend
			break
		}
		f.Warning("Unknown backend %q", backend)
	}

	for {
		fmt.Fprintf(out, "Typing speed per character [%s]: ", config.Display.TypingSpeed)
		speed := readLine(reader)
		if speed == "" {
			break
		}
		d, err := time.ParseDuration(speed)
		if err == nil && d >= 0 && d <= time.Second {
			config.Display.TypingSpeed = d
			break
		}
		f.Warning("Enter a duration such as 0s, 1ms or 15ms")
	}

	fmt.Fprint(out, "Ask before leaving the chamber on Escape? [Y/n]: ")
	if answer := strings.ToLower(readLine(reader)); answer == "n" || answer == "no" {
		config.Menus.ConfirmOnEscape = false
	}

	fmt.Fprintln(out)
	f.Subheader("Summary")
	f.KeyValue("data_dir", config.General.DataDir)
	f.KeyValue("backend", config.Display.Backend)
	f.KeyValue("typing_speed", config.Display.TypingSpeed)
	f.KeyValue("confirm_escape", config.Menus.ConfirmOnEscape)
	f.KeyValue("path", configPath)
	fmt.Fprintln(out)

	fmt.Fprint(out, "Save this configuration? [Y/n]: ")
	if confirm := strings.ToLower(readLine(reader)); confirm != "" && confirm != "y" && confirm != "yes" {
		return nil, errors.New(errors.ConfigInvalid, "Configuration not saved")
	}

	if err := Save(config, configPath); err != nil {
		return nil, err
	}
	config.ConfigPath = configPath

	f.Success("Configuration saved to %s", configPath)
	return config, nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

package commands

import (
	"testing"

	"github.com/spf13/viper"
)

func TestPersistentFlagsBoundToViper(t *testing.T) {
	tests := []struct {
		flag  string
		value string
	}{
		{"config", "custom-config.yaml"},
		{"debug", "true"},
		{"quiet", "true"},
	}

	for _, tt := range tests {
		if err := rootCmd.PersistentFlags().Set(tt.flag, tt.value); err != nil {
			t.Fatalf("setting --%s: %v", tt.flag, err)
		}
	}
	defer func() {
		_ = rootCmd.PersistentFlags().Set("config", "")
		_ = rootCmd.PersistentFlags().Set("debug", "false")
		_ = rootCmd.PersistentFlags().Set("quiet", "false")
	}()

	if got := viper.GetString("config"); got != "custom-config.yaml" {
		t.Errorf("viper config = %q, want the flag value", got)
	}
	if !viper.GetBool("debug") {
		t.Error("viper should see --debug")
	}
	if !viper.GetBool("quiet") {
		t.Error("viper should see --quiet")
	}
}

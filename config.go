package main

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

const (
	PackagingZip   = "zip"
	PackagingImage = "image"

	ArchitectureArm64 = "arm64"
	ArchitectureX86   = "x86_64"
)

type StackConfig struct {
	Packaging        string
	Architecture     string
	LogRetentionDays int
}

func loadStackConfig(ctx *pulumi.Context) (StackConfig, error) {
	cfg := config.New(ctx, "")
	return newStackConfig(cfg.Get("packaging"), cfg.Get("architecture"), cfg.GetInt("logRetentionDays"))
}

func newStackConfig(packaging, architecture string, logRetentionDays int) (StackConfig, error) {
	sc := StackConfig{
		Packaging:        PackagingZip,
		Architecture:     ArchitectureArm64,
		LogRetentionDays: 1,
	}

	switch packaging {
	case "":
	case PackagingZip, PackagingImage:
		sc.Packaging = packaging
	default:
		return StackConfig{}, fmt.Errorf("unsupported packaging %q: expected %q or %q", packaging, PackagingZip, PackagingImage)
	}

	switch architecture {
	case "":
	case ArchitectureArm64, ArchitectureX86:
		sc.Architecture = architecture
	default:
		return StackConfig{}, fmt.Errorf("unsupported architecture %q: expected %q or %q", architecture, ArchitectureArm64, ArchitectureX86)
	}

	if logRetentionDays < 0 {
		return StackConfig{}, fmt.Errorf("logRetentionDays must be positive, got %d", logRetentionDays)
	}
	if logRetentionDays > 0 {
		sc.LogRetentionDays = logRetentionDays
	}

	return sc, nil
}

// GoArch is the GOARCH value matching the lambda architecture.
func (sc StackConfig) GoArch() string {
	if sc.Architecture == ArchitectureX86 {
		return "amd64"
	}
	return "arm64"
}

func (sc StackConfig) Platform() string {
	return "linux/" + sc.GoArch()
}

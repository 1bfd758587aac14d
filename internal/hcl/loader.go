package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/fsutil"
)

// ConfigFileName is the canonical build configuration file name looked up
// when the project path is a directory.
const ConfigFileName = "webforge.hcl"

// configFileSchema describes the top level of a webforge.hcl file.
var configFileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "build_dir"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "module", LabelNames: []string{"name"}},
	},
}

// moduleBlockSchema describes the body of a `module "name" {}` block.
var moduleBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "options"},
	},
}

// Loader implements config.Loader for HCL project configurations.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the project's webforge.hcl files into a config.Options model.
// path may be a single .hcl file or a project directory; for a directory,
// every .hcl file under it is merged in walk order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Options, error) {
	logger := ctxlog.FromContext(ctx)

	files, rootDir, err := resolveConfigFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found configuration files to load.", "files", files)

	opts := config.Options{RootDir: rootDir}
	parser := hclparse.NewParser()

	for _, filePath := range files {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}
		if err := l.translateFile(ctx, file, filePath, &opts); err != nil {
			return nil, err
		}
		logger.Debug("Successfully loaded configuration file.", "file", filePath)
	}

	logger.Info("Build configuration loaded.", "root_dir", opts.RootDir, "declared_modules", len(opts.Modules))
	return &opts, nil
}

// translateFile merges one parsed file into the options model. Module blocks
// become declared specifiers: the bare name for a block without options, or a
// [name, options] pair when an options object is present.
func (l *Loader) translateFile(ctx context.Context, file *hcl.File, filePath string, opts *config.Options) error {
	content, diags := file.Body.Content(configFileSchema)
	if diags.HasErrors() {
		return fmt.Errorf("invalid configuration in %s: %w", filePath, diags)
	}

	if attr, ok := content.Attributes["build_dir"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("invalid build_dir in %s: %w", filePath, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return fmt.Errorf("invalid build_dir in %s: %w", filePath, err)
		}
		dir, ok := native.(string)
		if !ok {
			return fmt.Errorf("invalid build_dir in %s: expected string, got %T", filePath, native)
		}
		opts.BuildDir = dir
	}

	for _, block := range content.Blocks {
		if block.Type != "module" {
			continue
		}
		spec, err := l.translateModuleBlock(ctx, block, filePath)
		if err != nil {
			return err
		}
		opts.Modules = append(opts.Modules, spec)
	}
	return nil
}

// translateModuleBlock converts one module block into a specifier value.
func (l *Loader) translateModuleBlock(ctx context.Context, block *hcl.Block, filePath string) (any, error) {
	name := block.Labels[0]
	if name == "" {
		return nil, fmt.Errorf("module block in %s is missing its name label", filePath)
	}

	content, diags := block.Body.Content(moduleBlockSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid module %q in %s: %w", name, filePath, diags)
	}

	attr, ok := content.Attributes["options"]
	if !ok {
		return name, nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options for module %q in %s: %w", name, filePath, diags)
	}
	native, err := ctyToNative(val)
	if err != nil {
		return nil, fmt.Errorf("invalid options for module %q in %s: %w", name, filePath, err)
	}
	optsMap, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid options for module %q in %s: expected object, got %T", name, filePath, native)
	}

	ctxlog.FromContext(ctx).Debug("Declared module carries options.", "module", name)
	return []any{name, optsMap}, nil
}

// resolveConfigFiles expands a project path into the list of .hcl files to
// parse and the project root directory.
func resolveConfigFiles(path string) ([]string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("project path %s: %w", path, err)
	}

	if !info.IsDir() {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, "", err
		}
		return []string{abs}, filepath.Dir(abs), nil
	}

	rootDir, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	files, err := fsutil.FindFilesByExtension(rootDir, ".hcl")
	if err != nil {
		return nil, "", err
	}
	if len(files) == 0 {
		return nil, "", fmt.Errorf("no %s found under %s", ConfigFileName, rootDir)
	}
	return files, rootDir, nil
}

// Command swiftlower lowers public declarations from a declaration file
// into C-ABI thunks and C function declarations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/swiftlower/swiftlower/internal/ast"
	"github.com/swiftlower/swiftlower/internal/driver"
	"github.com/swiftlower/swiftlower/internal/lowertype"
	"github.com/swiftlower/swiftlower/internal/symtab"
)

var (
	Version = "dev"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "Print version information")
		helpFlag    = flag.Bool("help", false, "Show help")
		configPath  = flag.String("config", "", "Path to a driver YAML config")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("swiftlower %s\n", bold(Version))
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	switch flag.Arg(0) {
	case "lower":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing declaration file argument\n", red("Error"))
			fmt.Println("Usage: swiftlower [-config driver.yaml] lower <declarations.yaml>")
			os.Exit(1)
		}
		runLower(flag.Arg(1), *configPath)
	case "inspect":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing declaration file argument\n", red("Error"))
			fmt.Println("Usage: swiftlower inspect <declarations.yaml>")
			os.Exit(1)
		}
		runInspect(flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("swiftlower — Swift-to-C function signature lowering"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  swiftlower <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>     Lower every public declaration and print the report\n", green("lower"))
	fmt.Printf("  %s <file>   Print cdecl signatures and thunk bodies without a summary\n", green("inspect"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -config <path>   Driver YAML config (module_name, max_concurrent, symbol_prefix)")
	fmt.Println("  -version         Print version information")
	fmt.Println("  -help            Show this help message")
}

func buildTable(df *declFile) *symtab.Table {
	table := symtab.New()
	for _, ts := range df.Types {
		table.Declare(&lowertype.NominalDecl{
			Name:       ts.Name,
			ModuleName: df.ModuleName,
			Kind:       lowertypeKind(ts.Kind),
		})
	}
	return table
}

func lowertypeKind(kind string) lowertype.NominalKind {
	switch kind {
	case "actor":
		return lowertype.Actor
	case "struct":
		return lowertype.Struct
	case "enum":
		return lowertype.Enum
	case "protocol":
		return lowertype.Protocol
	default:
		return lowertype.Class
	}
}

func loadConfigOrDefault(path, moduleName string) *driver.Config {
	if path == "" {
		return &driver.Config{ModuleName: moduleName, MaxConcurrent: 1}
	}
	cfg, err := driver.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	if cfg.ModuleName == "" {
		cfg.ModuleName = moduleName
	}
	return cfg
}

func runLower(declPath, configPath string) {
	df, err := loadDeclFile(declPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	table := buildTable(df)
	cfg := loadConfigOrDefault(configPath, df.ModuleName)
	artifacts, run := driver.New(cfg, table).Run([]*ast.File{df.toFile()})

	for _, a := range artifacts {
		fmt.Println(a.CFunction.Declare())
		fmt.Printf("  %s\n", a.Body.String())
	}
	fmt.Println()
	fmt.Print(run.Summary())
}

func runInspect(declPath string) {
	df, err := loadDeclFile(declPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	table := buildTable(df)
	cfg := &driver.Config{ModuleName: df.ModuleName, MaxConcurrent: 1}
	artifacts, _ := driver.New(cfg, table).Run([]*ast.File{df.toFile()})

	for _, a := range artifacts {
		fmt.Printf("%s\n", bold(a.Binding.Name))
		fmt.Printf("  cdecl:  %s\n", a.CFunction.Declare())
		fmt.Printf("  thunk:  %s\n", a.Body.String())
	}
}

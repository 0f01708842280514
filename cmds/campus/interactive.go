package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wayfind/campus/navigator"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Answer route queries in a text loop",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	m, err := loadMap()
	if err != nil {
		return err
	}
	defer m.Close()

	// Only prompt when a human is on the other end. This keeps piped input
	// scriptable.
	prompting := term.IsTerminal(int(os.Stdin.Fd()))
	prompt := func(text string) {
		if prompting {
			fmt.Print(text)
		}
	}

	printMenu()
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt("Enter an option ('m' to see the menu): ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "m":
			printMenu()
		case "b":
			printBuildings(m.BuildingNames())
		case "r":
			if err := interactiveRoute(m, scanner, prompt); err != nil {
				return err
			}
		case "q":
			return nil
		case "":
			// Ignore empty lines.
		default:
			fmt.Println("Unknown option")
		}
		fmt.Println()
	}
}

func interactiveRoute(m *navigator.Map, scanner *bufio.Scanner, prompt func(string)) error {
	prompt("Abbreviated name of starting building: ")
	if !scanner.Scan() {
		return scanner.Err()
	}
	from := strings.TrimSpace(scanner.Text())

	prompt("Abbreviated name of ending building: ")
	if !scanner.Scan() {
		return scanner.Err()
	}
	to := strings.TrimSpace(scanner.Text())

	printRoute(m, from, to)
	return nil
}

func printMenu() {
	fmt.Println("Menu:")
	fmt.Println("\tr to find a route")
	fmt.Println("\tb to see a list of all buildings")
	fmt.Println("\tq to quit")
}

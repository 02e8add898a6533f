package main

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"regexlab/internal/regexlib"
)

// runInteractive reads strings until "exit" and reports whether each
// engine accepts them.
func runInteractive(re *regexlib.Regex) error {
	fmt.Println(promptui.Styler(promptui.FGCyan)("pattern " + re.Pattern()))
	for {
		prompt := promptui.Prompt{
			Label: "Enter a string to match (or type 'exit' to quit)",
		}
		input, err := prompt.Run()
		if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "exit" {
			return nil
		}

		verdicts := map[bool][]string{}
		for _, e := range regexlib.Engines {
			ok, err := re.MatchWith(e, input)
			if err != nil {
				return err
			}
			verdicts[ok] = append(verdicts[ok], string(e))
		}

		switch {
		case len(verdicts[false]) == 0:
			fmt.Println(promptui.Styler(promptui.FGGreen)("accepted"))
		case len(verdicts[true]) == 0:
			fmt.Println(promptui.Styler(promptui.FGRed)("rejected"))
		default:
			// every engine should give the same answer
			msg := fmt.Sprintf("engines disagree: accepted by %s, rejected by %s",
				strings.Join(verdicts[true], ","), strings.Join(verdicts[false], ","))
			fmt.Println(promptui.Styler(promptui.FGYellow)(msg))
		}
		fmt.Println(promptui.Styler(promptui.FGMagenta)(strings.Repeat("-", 30)))
	}
}

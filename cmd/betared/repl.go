package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/viper"
)

func repl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	names := demoNames()
	line.SetCompleter(func(prefix string) (c []string) {
		for _, name := range names {
			if strings.HasPrefix(name, prefix) {
				c = append(c, name)
			}
		}
		return c
	})

	fmt.Println(`betared repl — "list" shows demos, "run <demo>" normalizes one, "quit" exits`)

	for {
		input, err := line.Prompt("betared> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		switch fields[0] {
		case "quit", "exit":
			return nil

		case "list":
			all := demos()
			for _, name := range names {
				fmt.Printf("%-16s %s\n", name, all[name].about)
			}

		case "limits":
			if len(fields) != 3 {
				step, size := limits()
				fmt.Printf("step limit %d, size limit %d\n", step, size)
				continue
			}
			step, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Printf("bad step limit %q\n", fields[1])
				continue
			}
			size, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				fmt.Printf("bad size limit %q\n", fields[2])
				continue
			}
			viper.Set("step-limit", step)
			viper.Set("size-limit", size)

		case "run", "trace":
			if len(fields) != 2 {
				fmt.Printf("usage: %s <demo>\n", fields[0])
				continue
			}
			if err := runDemo(fields[1], fields[0] == "trace"); err != nil {
				fmt.Println(err)
			}

		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Samwisebuze/rustlike/internal/version"
)

const versionPkg = "github.com/Samwisebuze/rustlike/internal/version"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "ldflags":
		// go build -ldflags "$(go run ./tools/buildflags ldflags <commit> <branch>)" ./cmd/rustlike
		flags := []string{fmt.Sprintf("-X %s.BuildDate=%s", versionPkg, time.Now().UTC().Format("2006-01-02"))}
		if len(os.Args) > 2 {
			flags = append(flags, fmt.Sprintf("-X %s.BuildCommit=%s", versionPkg, os.Args[2]))
		}
		if len(os.Args) > 3 {
			flags = append(flags, fmt.Sprintf("-X %s.BuildBranch=%s", versionPkg, os.Args[3]))
		}
		fmt.Println(strings.Join(flags, " "))
	case "id":
		if len(os.Args) < 3 {
			fmt.Println("Usage: buildflags id <YYYY-MM-DD>")
			return
		}
		version.BuildDate = os.Args[2]
		id, err := version.BuildID()
		if err != nil {
			fmt.Printf("Invalid date: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(id)
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Println(`Build flags - метаданные сборки для internal/version
Commands:
  ldflags [commit] [branch]  - строка -ldflags с сегодняшней датой (UTC)
  id <YYYY-MM-DD>            - номер сборки для даты`)
}

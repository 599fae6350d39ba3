package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/quangnd/noteflow/internal/config"
	"github.com/quangnd/noteflow/internal/knowledge"
)

func main() {
	var (
		configPath string
		filePath   string
		topK       int
	)
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&filePath, "file", "", "Knowledge base text file")
	flag.IntVar(&topK, "top-k", 1, "Number of candidate answers to rank")
	flag.Parse()

	// Config file is optional here; flags win over it
	if configPath != "" {
		if cfg, err := config.Load(configPath); err == nil {
			if filePath == "" {
				filePath = cfg.Chat.KnowledgeFile
			}
			if topK == 1 && cfg.Chat.TopK > 0 {
				topK = cfg.Chat.TopK
			}
		}
	}

	if filePath == "" {
		color.Red("No knowledge base file given (use -file notes.txt)")
		os.Exit(1)
	}

	if err := run(filePath, topK); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(filePath string, topK int) error {
	base, err := knowledge.New(filePath)
	if err != nil {
		return fmt.Errorf("build knowledge base: %w", err)
	}

	color.Cyan("\n🧠 Offline TXT Chatbot Ready! (%d sentences, type 'exit' to quit)", base.Size())

	scanner := bufio.NewScanner(os.Stdin)
	userPrompt := color.New(color.FgGreen).PrintfFunc()
	botPrompt := color.New(color.FgCyan).PrintfFunc()

	for {
		userPrompt("\n❓ You: ")
		if !scanner.Scan() {
			break
		}

		query := scanner.Text()
		if strings.ToLower(query) == "exit" {
			break
		}

		matches := base.Answer(query, topK)
		botPrompt("🤖 Bot: \n📌 Most Relevant Answer:\n%s\n", matches[0].Text)
	}

	return scanner.Err()
}

// Command concierge-repl runs the assistant as a terminal conversation,
// without the HTTP service. It is the quickest way to exercise the
// dialogue flow end to end.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mvallone/concierge/internal/answer"
	"github.com/mvallone/concierge/internal/assistant"
	"github.com/mvallone/concierge/internal/config"
	"github.com/mvallone/concierge/internal/dialogue"
)

type stdioPresenter struct {
	in *bufio.Scanner
}

func (p *stdioPresenter) Present(text string) {
	fmt.Println(text)
}

func (p *stdioPresenter) PromptAndWait(prompt string) string {
	fmt.Print(prompt)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	answerService, err := answer.NewService(answer.Config{
		Mode:    cfg.AnswerMode,
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.AnswerBaseURL,
		Timeout: cfg.AnswerTimeout,
	})
	if err != nil {
		log.Fatalf("answer service init failed: %v", err)
	}

	console := &stdioPresenter{in: bufio.NewScanner(os.Stdin)}
	engine := dialogue.NewEngine(assistant.Registry(), answerService, console)

	fmt.Println(dialogue.MsgWelcome)
	fmt.Println(dialogue.MsgWelcomeScope)

	profile := dialogue.BootstrapProfile(console)
	state := dialogue.NewSession(profile)

	for _, line := range dialogue.MenuLines() {
		fmt.Println(line)
	}

	ctx := context.Background()
	for {
		text := console.PromptAndWait("💬 You: ")
		if text == "" {
			continue
		}

		if state.AwaitingContinue {
			newState, out := engine.HandleContinueAnswer(ctx, state, text)
			state = newState
			switch out.Kind {
			case dialogue.Ended:
				fmt.Println(out.Body)
				return
			case dialogue.ResumedMenu:
				fmt.Println(out.Body)
				for _, line := range dialogue.MenuLines() {
					fmt.Println(line)
				}
			case dialogue.FreeAnswer:
				fmt.Println(out.Body)
				fmt.Println(dialogue.MsgContinuePrompt)
			}
			continue
		}

		newState, out := engine.HandleTurn(ctx, state, text)
		state = newState
		switch out.Kind {
		case dialogue.QuotaBlocked:
			fmt.Println(out.Body)
		case dialogue.Answered:
			if !out.Success {
				fmt.Println(out.Body)
				break
			}
			if out.Greeting != "" {
				fmt.Println("💡 " + out.Greeting)
			}
			fmt.Println("🤖 " + out.Body)
			if state.AwaitingContinue {
				fmt.Println(dialogue.MsgContinuePrompt)
			}
		}
		// Follow-up prompts are presented by the engine itself.
	}
}

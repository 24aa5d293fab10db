package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"craft/internal/artifact"
	"craft/internal/core"
	"craft/internal/generate"
	"craft/internal/imagegen"
	"craft/internal/llm"
	"craft/internal/logger"
	"craft/internal/pipeline"
)

var (
	createFormat   string
	createRefs     []string
	createTextOnly bool
	createSession  string
)

var createCmd = &cobra.Command{
	Use:   "create <topic>",
	Short: "Generate content and images for a topic",
	Example: `  craft create "건강한 식습관" --format 카드뉴스
  craft create "분기 실적" --format infographic --ref stats.xlsx --ref report.pdf
  craft create "주간 소식" --format newsletter --text-only`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFormat, "format", "f", "뉴스레터", "content format (카드뉴스|뉴스레터|인포그래픽 or card-news|newsletter|infographic)")
	createCmd.Flags().StringArrayVar(&createRefs, "ref", nil, "reference file (repeatable; pdf, xlsx, xls, csv, png, jpg, jpeg, gif, bmp)")
	createCmd.Flags().BoolVar(&createTextOnly, "text-only", false, "skip image synthesis")
	createCmd.Flags().StringVar(&createSession, "session", "", "artifact session ID (reuses its cached images; default is a fresh UUID)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	topic := args[0]

	format, ok := core.ParseFormat(createFormat)
	if !ok {
		return fmt.Errorf("unknown format %q (supported: 카드뉴스, 뉴스레터, 인포그래픽)", createFormat)
	}

	ctx := cmd.Context()

	// The text model is optional: without a key the pipeline degrades to the
	// format skeleton instead of refusing to run.
	var textModel generate.TextModel
	if key := cfg.AI.Gemini.APIKey; key != "" {
		client, err := llm.NewClient(ctx, key, cfg.AI.Gemini.Model)
		if err != nil {
			return err
		}
		textModel = client
	} else {
		logger.Warn("no Gemini API key configured; content will use the skeleton structure")
	}

	generator := generate.New(textModel, generate.Options{
		Temperature: cfg.AI.Gemini.Temperature,
		MaxTokens:   cfg.AI.Gemini.MaxTokens,
	})

	var (
		synthesizer pipeline.ImageSynthesizer
		store       artifact.Store
		session     string
	)
	if !createTextOnly {
		if cfg.Images.OpenAI.APIKey == "" {
			logger.Warn("no OpenAI API key configured; skipping image synthesis")
		} else {
			timeout, err := time.ParseDuration(cfg.Images.OpenAI.Timeout)
			if err != nil {
				timeout = 0
			}
			imageClient := imagegen.NewOpenAIClient(cfg.Images.OpenAI.APIKey, cfg.Images.OpenAI.Model, cfg.Images.OpenAI.BaseURL, timeout)
			synthesizer = imagegen.NewOrchestrator(imageClient)

			dir, sessionID, err := artifact.NewSession(filepath.Join(cfg.App.DataDir, cfg.Output.ArtifactsDir), createSession)
			if err != nil {
				return err
			}
			store = dir
			session = sessionID
		}
	}

	result, err := pipeline.New(generator, synthesizer, store).Run(ctx, core.ContentRequest{
		Topic:          topic,
		Format:         format,
		ReferenceFiles: createRefs,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.FormattedContent)

	if result.Status == core.StatusDegraded {
		fmt.Fprintln(cmd.OutOrStdout(), "⚠ 콘텐츠 생성에 실패하여 기본 구조로 대체되었습니다.")
	}

	if len(result.Images) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n이미지 (%s):\n", session)
		for _, img := range result.Images {
			marker := "생성됨"
			if img.Cached {
				marker = "캐시됨"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s [%s] %s\n", img.Filename, img.Role, marker)
		}
	}
	for _, imgErr := range result.Errors {
		if imgErr.Filename == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  실패: %s\n", imgErr.Message)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  실패: %s (%s)\n", imgErr.Filename, imgErr.Message)
	}

	if result.Status == core.StatusError {
		return fmt.Errorf("content creation failed")
	}
	return nil
}

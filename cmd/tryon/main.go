// Command tryon runs a single try-on against Gemini from the command line.
//
//	go run ./cmd/tryon -self me.jpg -outfit dress.png -out result.png
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/raushankrgupta/trymeup/config"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/raushankrgupta/trymeup/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	selfPath := flag.String("self", "", "path to the user photo")
	outfitPath := flag.String("outfit", "", "path to the outfit photo")
	outPath := flag.String("out", "tryon_result.png", "where to write the generated image")
	flag.Parse()

	config.LoadConfig()
	logger := utils.InitLogger("tryon", config.LogLevel)

	if *selfPath == "" || *outfitPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GenerationTimeout)
	defer cancel()

	gemini, err := utils.NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiImageModel, config.GeminiTextModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}
	defer gemini.Close()

	s := session.New("cli", utils.NewImageDecoder(config.MaxUploadBytes), gemini, gemini, session.Options{
		FeedbackTimeout: config.FeedbackTimeout,
		Logger:          &logger,
	})
	defer s.Close()

	for role, path := range map[session.Role]string{session.RoleSelf: *selfPath, session.RoleOutfit: *outfitPath} {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to read image")
		}
		if _, err := s.UploadImage(ctx, role, raw); err != nil {
			log.Fatal().Err(err).Str("role", string(role)).Msg("Failed to load image")
		}
	}

	fmt.Println("Generating try-on...")
	result, err := s.Generate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Try-on failed")
	}

	_, data, err := utils.ParseDataURL(result.Image)
	if err != nil {
		log.Fatal().Err(err).Msg("Unexpected image payload")
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("Failed to write result")
	}
	fmt.Printf("Result written to %s\n", *outPath)

	s.Wait()
	if fb := s.Snapshot().Feedback; fb != nil {
		fmt.Printf("Feedback: %s\n", fb.Text)
	}
}

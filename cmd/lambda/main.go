// Command lambda serves the lead endpoint from AWS Lambda behind an API
// Gateway HTTP API. Secrets missing from the environment are read from SSM
// Parameter Store when SSM_PARAMETER_PREFIX is set.
package main

import (
	"context"
	"errors"
	"fmt"
	"lead-dispatcher/internal/app"
	"lead-dispatcher/internal/config"
	"lead-dispatcher/internal/infra/logger"
	"lead-dispatcher/internal/infra/provider"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

var router http.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(context.Background(), true, cfg.LogLevel)

	if prefix := config.GetEnv("SSM_PARAMETER_PREFIX", ""); prefix != "" {
		if err := loadSecrets(context.Background(), cfg, prefix); err != nil {
			log.Fatal(fmt.Sprintf("Failed to load secrets from SSM: %v", err))
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Warn(fmt.Sprintf("Leads will be rejected until configured: %v", err))
	}

	router = app.NewRouter(cfg, log, provider.NewHTTPClient())
}

// loadSecrets fills secrets that are empty in cfg from SSM parameters named
// <prefix>/<ENV_NAME>. Parameters that do not exist are left unset.
func loadSecrets(ctx context.Context, cfg *config.Config, prefix string) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := ssm.NewFromConfig(awsCfg)

	secrets := []struct {
		name   string
		target *string
	}{
		{"TELEGRAM_BOT_TOKEN", &cfg.TelegramBotToken},
		{"TELEGRAM_CHAT_ID", &cfg.TelegramChatID},
		{"TELEGRAM_NEW_CHAT_ID", &cfg.TelegramNewChatID},
		{"META_VERIFY_TOKEN", &cfg.MetaVerifyToken},
		{"META_PAGE_ACCESS_TOKEN", &cfg.MetaPageAccessToken},
		{"META_APP_SECRET", &cfg.MetaAppSecret},
	}

	for _, s := range secrets {
		if *s.target != "" {
			continue
		}
		paramName := strings.TrimRight(prefix, "/") + "/" + s.name
		result, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           &paramName,
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			var notFound *ssmtypes.ParameterNotFound
			if errors.As(err, &notFound) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", paramName, err)
		}
		if result.Parameter != nil && result.Parameter.Value != nil {
			*s.target = *result.Parameter.Value
		}
	}

	return nil
}

func main() {
	adapter := httpadapter.NewV2(router)
	lambda.Start(adapter.ProxyWithContext)
}

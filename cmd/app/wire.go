//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/news-summarizer/internal/bootstrap"
	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/internal/infra/config"
	httpiface "github.com/yanqian/news-summarizer/internal/interface/http"
	"github.com/yanqian/news-summarizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSummaryConfig,
		provideSummaryCache,
		provideSummaryRepository,
		provideSourceStore,
		summarizer.NewService,
		httpiface.NewSummaryHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/bank-ledger/src/internal/commons"
	"github.com/api-sage/bank-ledger/src/internal/domain"
	"github.com/api-sage/bank-ledger/src/internal/logger"
	"github.com/api-sage/bank-ledger/src/internal/metrics"
)

type ClientService struct {
	clientRepo domain.ClientRepository
	metrics    *metrics.Metrics
}

func NewClientService(clientRepo domain.ClientRepository, m *metrics.Metrics) *ClientService {
	return &ClientService{clientRepo: clientRepo, metrics: m}
}

func (s *ClientService) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service register client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("client service register client validation failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, err.Error()), err
	}

	birthDate, err := time.Parse(models.BirthDateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, "birthDate must be in DD-MM-YYYY format"), err
	}

	client := domain.NewClient(
		strings.TrimSpace(req.CPF),
		strings.TrimSpace(req.Name),
		birthDate,
		strings.TrimSpace(req.Address),
	)

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		logger.Error("client service register client repository failed", err, nil)
		if errors.Is(err, domain.ErrDuplicateIdentifier) {
			return commons.ErrorResponse[models.ClientResponse](commons.MessageDuplicateClient, "cpf is already registered"), err
		}
		return commons.ErrorResponse[models.ClientResponse]("failed to register client", "Unable to register client right now"), fmt.Errorf("register client: %w", err)
	}
	s.metrics.IncrementClientsRegistered()

	response := toClientResponse(created)

	logger.Info("client service register client success", logger.Fields{
		"name": response.Name,
	})

	return commons.SuccessResponse("client registered successfully", response), nil
}

func (s *ClientService) GetClient(ctx context.Context, cpf string) (commons.Response[models.ClientResponse], error) {
	logger.Info("client service get client request", nil)

	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return commons.ErrorResponse[models.ClientResponse](commons.MessageValidationFailed, "cpf is required"), fmt.Errorf("cpf is required")
	}

	client, err := s.clientRepo.GetByCPF(ctx, cpf)
	if err != nil {
		logger.Error("client service get client failed", err, nil)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ClientResponse](commons.MessageClientNotFound), err
		}
		return commons.ErrorResponse[models.ClientResponse]("failed to get client", "Unable to fetch client right now"), err
	}

	return commons.SuccessResponse("client fetched successfully", toClientResponse(client)), nil
}

func (s *ClientService) ListClients(ctx context.Context) (commons.Response[[]models.ClientResponse], error) {
	logger.Info("client service list clients request", nil)

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		logger.Error("client service list clients failed", err, nil)
		return commons.ErrorResponse[[]models.ClientResponse]("failed to list clients", "Unable to list clients right now"), err
	}

	resp := make([]models.ClientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, toClientResponse(client))
	}

	logger.Info("client service list clients success", logger.Fields{
		"count": len(resp),
	})

	return commons.SuccessResponse("clients fetched successfully", resp), nil
}

func toClientResponse(client *domain.Client) models.ClientResponse {
	accounts := client.Accounts()
	numbers := make([]int64, 0, len(accounts))
	for _, account := range accounts {
		numbers = append(numbers, account.Number())
	}

	return models.ClientResponse{
		CPF:            client.CPF,
		Name:           client.Name,
		BirthDate:      client.BirthDate.Format(models.BirthDateLayout),
		Address:        client.Address,
		AccountNumbers: numbers,
		CreatedAt:      client.CreatedAt.Format(time.RFC3339),
	}
}

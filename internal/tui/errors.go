// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/lumina-sync/internal/service"
)

func humanizeSyncError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNetworkUnavailable), errors.Is(err, service.ErrTimeout):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, service.ErrAuthRequired):
		return "Требуется вход: токен отсутствует или истёк"
	case errors.Is(err, service.ErrForbidden):
		return "Недостаточно прав"
	case errors.Is(err, service.ErrNotFound):
		return "Запись не найдена"
	case errors.Is(err, service.ErrOperationInProgress):
		return "Операция уже выполняется"
	}
	return err.Error()
}

package experience

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда experience не найден или неактивен
	ErrExperienceNotFound = errors.New("experience.repository: experience not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("experience.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("experience.repository: failed to scan row")
)

//go:generate mockgen -source=../car_repository.go  -destination=./mock_car_repository.go  -package=mocks
//go:generate mockgen -source=../car_cache.go       -destination=./mock_car_cache.go       -package=mocks
//go:generate mockgen -source=../car_validator.go   -destination=./mock_car_validator.go   -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks
//go:generate mockgen -source=../car_service.go     -destination=./mock_car_service.go     -package=mocks
//go:generate mockgen -source=../logger.go          -destination=./mock_logger.go          -package=mocks

package mocks

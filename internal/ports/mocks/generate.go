//go:generate mockgen -source=../restaurant_repository.go -destination=./mock_restaurant_repository.go -package=mocks
//go:generate mockgen -source=../dish_repository.go       -destination=./mock_dish_repository.go       -package=mocks
//go:generate mockgen -source=../restaurant_cache.go      -destination=./mock_restaurant_cache.go      -package=mocks
//go:generate mockgen -source=../dish_event_publisher.go  -destination=./mock_dish_event_publisher.go  -package=mocks
//go:generate mockgen -source=../validator.go             -destination=./mock_validator.go             -package=mocks
//go:generate mockgen -source=../logger.go                -destination=./mock_logger.go                -package=mocks
//go:generate mockgen -source=../services.go              -destination=./mock_services.go              -package=mocks

package mocks

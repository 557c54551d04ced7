package registry

import "fmt"

// สำหรับกำหนด key ของ service ที่จะ export
type ServiceKey string

// สำหรับ map key กับ service ที่จะ export
type ProvidedService struct {
	Key   ServiceKey
	Value any
}

type ServiceRegistry interface {
	Register(key ServiceKey, svc any)
	Resolve(key ServiceKey) (any, error)
}

type serviceRegistry struct {
	services map[ServiceKey]any
}

func NewServiceRegistry() ServiceRegistry {
	return &serviceRegistry{
		services: make(map[ServiceKey]any),
	}
}

func (r *serviceRegistry) Register(key ServiceKey, svc any) {
	r.services[key] = svc
}

func (r *serviceRegistry) Resolve(key ServiceKey) (any, error) {
	svc, ok := r.services[key]
	if !ok {
		return nil, fmt.Errorf("service not found: %s", key)
	}
	return svc, nil
}

// ResolveAs ดึง service จาก registry แล้วแปลง type ให้เลย
func ResolveAs[T any](r ServiceRegistry, key ServiceKey) (T, error) {
	var zero T
	svc, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has type %T, not the requested type", key, svc)
	}
	return typed, nil
}

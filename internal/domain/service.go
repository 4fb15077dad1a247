package domain

// Service услуга студии
type Service struct {
	ID       string
	Name     string
	Price    float64
	Duration int // minutes
}

// DefaultCatalog каталог услуг студии
func DefaultCatalog() []Service {
	return []Service{
		{ID: "trial", Name: "Пробный сеанс AIR VIBE", Price: 7000, Duration: 20},
		{ID: "balance", Name: "BALANCE — самочувствие", Price: 70000, Duration: 30},
		{ID: "beauty", Name: "BEAUTY — омоложение", Price: 120000, Duration: 30},
		{ID: "glowPro", Name: "GLOW PRO — максимальное сияние", Price: 170000, Duration: 45},
	}
}

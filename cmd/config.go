package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	AuthServiceURL    string
	MenuServiceURL    string
	OrderServiceURL   string
	PaymentServiceURL string
	UserServiceURL    string
	ServiceToken      string
}

package client

import "time"

type Clients struct {
	*FlashAPI
}

func InitClients(baseURL string, timeout time.Duration) Clients {
	return Clients{
		FlashAPI: NewFlashAPI(baseURL, timeout),
	}
}

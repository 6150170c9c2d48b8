package sources

import "github.com/Jis87-63/noticias-moc/core/domain"

// Browser header sets. Each source gets its own so the origins do not see
// identical fingerprints from one client.
var (
	chromeWindows = map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Accept":          "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.7",
		"Accept-Language": "pt-PT,pt;q=0.9,en;q=0.8",
	}
	firefoxLinux = map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
		"Accept":          "application/rss+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "pt-MZ,pt;q=0.8,en-US;q=0.5,en;q=0.3",
	}
	safariMac = map[string]string{
		"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
		"Accept":          "application/xml,text/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "pt-PT,pt;q=0.9",
	}
	edgeWindows = map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
		"Accept":          "application/rss+xml, text/xml, */*",
		"Accept-Language": "pt,en;q=0.8",
	}
	chromeAndroid = map[string]string{
		"User-Agent":      "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
		"Accept":          "application/rss+xml, application/xml, text/xml, */*",
		"Accept-Language": "pt-MZ,pt;q=0.9,en;q=0.7",
	}
)

// Default returns the built-in source list
func Default() []domain.SourceDescriptor {
	return []domain.SourceDescriptor{
		{
			Name:     "O País",
			Endpoint: "https://opais.co.mz/feed/",
			Category: "Geral",
			Headers:  chromeWindows,
		},
		{
			Name:     "Jornal Notícias",
			Endpoint: "https://www.jornalnoticias.co.mz/feed/",
			Category: "Geral",
			Headers:  firefoxLinux,
		},
		{
			Name:     "Club of Mozambique",
			Endpoint: "https://clubofmozambique.com/feed/",
			Category: "Economia",
			Headers:  safariMac,
		},
		{
			Name:     "Carta de Moçambique",
			Endpoint: "https://www.cartamz.com/index.php?format=feed&type=rss",
			Category: "Política",
			Headers:  edgeWindows,
			Proxied:  true,
		},
		{
			Name:     "Folha de Maputo",
			Endpoint: "https://www.folhademaputo.co.mz/feed/",
			Category: "Sociedade",
			Headers:  chromeAndroid,
		},
		{
			Name:     "Lusa Moçambique",
			Endpoint: "https://www.lusa.pt/rss/mocambique",
			Category: "Internacional",
			Headers:  firefoxLinux,
			Proxied:  true,
		},
	}
}

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// адрес health-check'а локального сервера
const healthURL = "http://127.0.0.1:5001/health"

// waitHealthy опрашивает /health, пока сервер не ответит 200 или не выйдет время.
func waitHealthy(timeout time.Duration) error {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := client.Get(healthURL)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("server is not healthy after %s", timeout)
}

func main() {
	fmt.Println("Запуск Contacts API...")

	clientName := "contacts"
	if runtime.GOOS == "windows" {
		clientName = "contacts.exe"
	}
	// запускаем сервер на фоне
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	if err := waitHealthy(30 * time.Second); err != nil {
		fmt.Printf("Ошибка: %v (проверь CONNECTION_STRING и ACCESS_TOKEN_SECRET)\n", err)
		server.Process.Kill()
		return
	}

	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/contacts")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
	}

	fmt.Println("Сервер запущен")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\contacts.exe --help")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./contacts --help")
	}

	server.Wait()
}

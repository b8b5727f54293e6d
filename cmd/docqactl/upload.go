package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var (
	uploadAPI      string
	uploadEmail    string
	uploadPassword string
)

func init() {
	uploadCmd.Flags().StringVar(&uploadAPI, "api", "http://localhost:8000", "review API base URL")
	uploadCmd.Flags().StringVar(&uploadEmail, "email", "", "provider email")
	uploadCmd.Flags().StringVar(&uploadPassword, "password", "", "provider password")
	_ = uploadCmd.MarkFlagRequired("email")
	_ = uploadCmd.MarkFlagRequired("password")
}

// uploadCmd 登录后将分块文件上传到审核 API
var uploadCmd = &cobra.Command{
	Use:   "upload <file.jsonl>",
	Short: "Upload a chunk file to the review API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := &http.Client{Timeout: 120 * time.Second}

		token, err := login(client)
		if err != nil {
			return err
		}

		status, body, err := uploadFile(client, token, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", status, body)
		return nil
	},
}

// login 获取访问令牌
func login(client *http.Client) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    uploadEmail,
		"password": uploadPassword,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(uploadAPI+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if out.Data.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return out.Data.Token, nil
}

// uploadFile 以 multipart 形式上传分块文件
func uploadFile(client *http.Client, token, path string) (int, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("f", filepath.Base(path))
	if err != nil {
		return 0, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return 0, "", err
	}
	if err := w.Close(); err != nil {
		return 0, "", err
	}

	req, err := http.NewRequest(http.MethodPost, uploadAPI+"/upload/file", &buf)
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(body), nil
}

//go:build ignore

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // AI calls can be slow, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func dataField(body []byte) map[string]interface{} {
	var envelope map[string]interface{}
	json.Unmarshal(body, &envelope)
	prettyPrint(envelope)
	if data, ok := envelope["data"].(map[string]interface{}); ok {
		return data
	}
	return nil
}

func main() {
	color.Cyan("Starting AI Suggestion Pipeline API Test\n")

	// 1. Register + login (register may 500 on rerun, that's fine)
	color.Yellow("\n[AUTH] 1. Register & Login")
	sendRequest("POST", "/auth/v1/register", "", map[string]interface{}{
		"email":     "smoke@example.com",
		"password":  "smoketest123",
		"full_name": "Smoke Tester",
	})
	resp, body, err := sendRequest("POST", "/auth/v1/login", "", map[string]interface{}{
		"email":    "smoke@example.com",
		"password": "smoketest123",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	data := dataField(body)
	token, _ := data["token"].(string)
	if token == "" {
		color.Red("No token returned, aborting")
		os.Exit(1)
	}

	// 2. Create project
	color.Yellow("\n[PROJECT] 2. Create Project")
	resp, body, err = sendRequest("POST", "/project/v1", token, map[string]interface{}{
		"name":        "Smoke Test Project",
		"description": "A recipe sharing app for home cooks",
		"mission":     "Make weeknight cooking effortless",
		"goals":       []string{"10k users in year one"},
		"in_scope":    []string{"recipes", "meal planning"},
		"out_of_scope": []string{
			"grocery delivery",
		},
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	data = dataField(body)
	projectID, _ := data["id"].(string)

	// 3. Generate suggestions (technical perspective)
	color.Yellow("\n[AI] 3. Suggest Features (technical)")
	resp, body, err = sendRequest("POST", "/ai/v1/project/"+projectID+"/suggest-features", token, map[string]interface{}{
		"perspective": "technical",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var suggestResp map[string]interface{}
	json.Unmarshal(body, &suggestResp)
	prettyPrint(suggestResp)

	var suggestionID string
	if arr, ok := suggestResp["data"].([]interface{}); ok && len(arr) > 0 {
		if first, ok := arr[0].(map[string]interface{}); ok {
			suggestionID, _ = first["id"].(string)
		}
	}

	// 4. Accept the first suggestion
	if suggestionID != "" {
		color.Yellow("\n[AI] 4. Accept Suggestion %s", suggestionID)
		resp, body, err = sendRequest("POST", "/ai/v1/suggestion/"+suggestionID+"/accept", token, nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		dataField(body)
	}

	// 5. List features (should include the accepted one)
	color.Yellow("\n[FEATURE] 5. List Features")
	resp, body, err = sendRequest("GET", "/feature/v1/project/"+projectID, token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var listResp map[string]interface{}
	json.Unmarshal(body, &listResp)
	prettyPrint(listResp)

	var featureID string
	if arr, ok := listResp["data"].([]interface{}); ok && len(arr) > 0 {
		if first, ok := arr[0].(map[string]interface{}); ok {
			featureID, _ = first["id"].(string)
		}
	}

	// 6. Enhance description
	color.Yellow("\n[AI] 6. Enhance Description")
	resp, body, err = sendRequest("POST", "/ai/v1/enhance-description", token, map[string]interface{}{
		"name":        "Recipe Search",
		"description": "search recipes",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	dataField(body)

	// 7. Generate tags
	color.Yellow("\n[AI] 7. Generate Tags")
	resp, body, err = sendRequest("POST", "/ai/v1/generate-tags", token, map[string]interface{}{
		"featureName":        "Recipe Search",
		"featureDescription": "Full-text search across recipe titles and ingredients",
		"projectContext":     "Recipe sharing app",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	dataField(body)

	// 8. Analyze branching
	if featureID != "" {
		color.Yellow("\n[AI] 8. Analyze Branching")
		resp, body, err = sendRequest("POST", "/ai/v1/project/"+projectID+"/analyze-branching", token, map[string]interface{}{
			"newFeatureIds": []string{featureID},
		})
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		dataField(body)
	}

	// 9. Activity log
	color.Yellow("\n[PROJECT] 9. Activity Log")
	resp, body, err = sendRequest("GET", "/project/v1/"+projectID+"/activity", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var actResp map[string]interface{}
	json.Unmarshal(body, &actResp)
	prettyPrint(actResp)

	color.Cyan("\nDone.")
}

package idcard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
)

// CardData carries everything the identity-card layout needs. CollegeName is
// the resolved organization name, or "N/A" when the designation has none.
type CardData struct {
	Name          string
	Designation   string
	CollegeName   string
	EventID       string
	Photo         []byte
	PhotoMimeType string
}

// photoDataURI encodes the validated photo bytes as an inline data URL. The
// bytes never come from markup, so the URI is safe to mark as a trusted URL;
// every text field still goes through html/template escaping.
func photoDataURI(mimeType string, photo []byte) template.URL {
	return template.URL(fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(photo)))
}

// BuildHTML renders the fixed A4 identity-card layout for one registration.
func BuildHTML(data CardData) (string, error) {
	var buf bytes.Buffer
	err := cardTemplate.Execute(&buf, struct {
		CardData
		PhotoSrc template.URL
	}{
		CardData: data,
		PhotoSrc: photoDataURI(data.PhotoMimeType, data.Photo),
	})
	if err != nil {
		return "", fmt.Errorf("execute card template: %w", err)
	}
	return buf.String(), nil
}

var cardTemplate = template.Must(template.New("idcard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Business Card</title>
  <style>
    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      background-color: #f5f5f5;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
    }

    .business-card {
      width: 700px;
      height: 450px;
      background: linear-gradient(135deg, #1a73e8 50%, #0077b5 50%);
      color: #fff;
      border-radius: 12px;
      box-shadow: 0 10px 25px rgba(0, 0, 0, 0.2);
      position: relative;
      overflow: hidden;
      display: flex;
      flex-direction: row;
      justify-content: space-between;
    }

    .slanted-bg {
      width: 50%;
      background-color: #2b2d42;
      position: absolute;
      height: 100%;
      clip-path: polygon(0 0, 100% 0, 70% 100%, 0% 100%);
      z-index: 1;
    }

    .photo-container {
      z-index: 2;
      display: flex;
      align-items: center;
      justify-content: center;
      width: 45%;
      padding-left: 30px;
    }

    .photo-container img {
      width: 200px;
      height: 200px;
      border-radius: 8px;
      border: 5px solid #1a73e8;
      box-shadow: 0 4px 10px rgba(0, 0, 0, 0.2);
      background-color: #fff;
    }

    .details-container {
      z-index: 2;
      width: 55%;
      padding: 40px 30px;
      display: flex;
      flex-direction: column;
      justify-content: center;
    }

    .card-header {
      text-align: left;
    }

    .card-header h2 {
      margin: 0;
      font-size: 2.0rem;
      letter-spacing: 1px;
      font-weight: 700;
      color: #f0f0f0;
    }

    .card-header h3 {
      margin: 5px 0;
      font-size: 1.4rem;
      font-weight: 400;
      color: #f0f0f0;
    }

    .card-header h4 {
      margin: 5px 0 20px;
      font-size: 1.4rem;
      font-weight: 400;
      color: #f0f0f0;
    }

    .card-body {
      font-size: 1.1rem;
      color: #f0f0f0;
    }

    .card-body p {
      margin: 6px 0;
      display: flex;
      align-items: center;
    }

    .svg-icon {
      width: 20px;
      height: 20px;
      margin-right: 10px;
    }

    .logo-container {
      position: absolute;
      top: 10px;
      left: 60%;
      transform: translateX(-30%);
      display: flex;
      justify-content: space-around;
      width: 250px;
    }

    .logo-container img:first-child {
      margin-left: 50px;
    }

    .logo-container img {
      width: 60px;
      height: auto;
    }

    .bottom-logo-container {
      position: absolute;
      bottom: 10px;
      left: 68%;
      transform: translateX(-50%);
      display: flex;
      gap: 30px;
    }

    .bottom-logo-container img {
      width: 60px;
      height: auto;
    }
  </style>
</head>
<body>
  <div class="business-card">
    <div class="slanted-bg"></div>
    <div class="logo-container">
      <img src="https://iimstc.com/wp-content/uploads/2024/09/WhatsApp-Image-2024-09-02-at-12.25.43-PM-150x150.jpeg" alt="Logo 1">
      <img src="https://iimstc.com/wp-content/uploads/2024/09/WhatsApp-Image-2024-09-02-at-8.34.37-AM.jpeg" alt="Logo 2">
    </div>
    <div class="photo-container">
      <img src="{{.PhotoSrc}}" alt="User Photo">
    </div>
    <div class="details-container">
      <div class="card-header">
        <p style="text-align: right; font-weight: bold; font-size: 1.2rem;">Event ID: {{.EventID}}</p>
        <h2>{{.Name}}</h2>
        <h3>{{.Designation}}</h3>
        <h4>{{.CollegeName}}</h4>
      </div>
      <div class="card-body">
        <p>
          <svg class="svg-icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512" width="10" height="10">
            <path d="M164.9 24.6c-7.7-18.6-28-28.5-47.4-23.2l-88 24C12.1 30.2 0 46 0 64C0 311.4 200.6 512 448 512c18 0 33.8-12.1 38.6-29.5l24-88c5.3-19.4-4.6-39.7-23.2-47.4l-96-40c-16.3-6.8-35.2-2.1-46.3 11.6L304.7 368C234.3 334.7 177.3 277.7 144 207.3L193.3 167c13.7-11.2 18.4-30 11.6-46.3l-40-96z"/>
          </svg>
          +91 9304080481
        </p>
        <p>
          <svg class="svg-icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512" width="20" height="20">
            <path d="M48 64C21.5 64 0 85.5 0 112c0 15.1 7.1 29.3 19.2 38.4L236.8 313.6c11.4 8.5 27 8.5 38.4 0L492.8 150.4c12.1-9.1 19.2-23.3 19.2-38.4c0-26.5-21.5-48-48-48L48 64zM0 176L0 384c0 35.3 28.7 64 64 64l384 0c35.3 0 64-28.7 64-64l0-208L294.4 339.2c-22.8 17.1-54 17.1-76.8 0L0 176z"/>
          </svg>
          admin@iimstc.com
        </p>
      </div>
    </div>
    <div class="bottom-logo-container">
      <img src="https://www.ecindia.org/Fourth-comming-event/ECI-WB.png" alt="Bottom Logo">
      <img src="https://vectorseek.com/wp-content/uploads/2023/09/AICTE-Logo-Vector.svg-.png" alt="Bottom Logo">
      <img src="https://presentations.gov.in/wp-content/uploads/2020/06/UGC-Preview.png?x31571" alt="Bottom Logo">
    </div>
  </div>
</body>
</html>
`))

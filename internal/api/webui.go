package api

// indexHTML is the embedded web interface served at /.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>AI Portfolio Website Generator</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

  :root {
    --bg: #fafbfc;
    --surface: #ffffff;
    --border: #e8ecf0;
    --text: #1a2332;
    --text-muted: #9ba8b7;
    --accent: #3b82f6;
    --accent-hover: #2563eb;
    --error: #ef4444;
    --radius: 14px;
  }

  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Inter, Roboto, Helvetica, Arial, sans-serif;
    background: var(--bg);
    color: var(--text);
    min-height: 100vh;
    display: flex;
    flex-direction: column;
    align-items: center;
    padding: 3rem 1.25rem 2rem;
    -webkit-font-smoothing: antialiased;
  }

  h1 {
    font-size: 1.375rem;
    font-weight: 700;
    letter-spacing: -0.02em;
  }

  .subtitle {
    color: var(--text-muted);
    font-size: 0.875rem;
    margin: 0.375rem 0 2.25rem;
    text-align: center;
  }

  .container { width: 100%; max-width: 640px; }

  textarea {
    width: 100%;
    min-height: 220px;
    padding: 1rem;
    border: 1px solid var(--border);
    border-radius: var(--radius);
    background: var(--surface);
    font: inherit;
    font-size: 0.9375rem;
    resize: vertical;
  }
  textarea:focus { outline: 2px solid var(--accent); border-color: transparent; }

  button {
    margin-top: 1rem;
    width: 100%;
    padding: 0.875rem;
    border: 0;
    border-radius: var(--radius);
    background: var(--accent);
    color: #fff;
    font: inherit;
    font-weight: 600;
    cursor: pointer;
  }
  button:hover { background: var(--accent-hover); }
  button:disabled { opacity: 0.6; cursor: wait; }

  .spinner {
    display: none;
    margin: 1.25rem auto 0;
    width: 28px;
    height: 28px;
    border: 3px solid var(--border);
    border-top-color: var(--accent);
    border-radius: 50%;
    animation: spin 0.8s linear infinite;
  }
  @keyframes spin { to { transform: rotate(360deg); } }

  .message { margin-top: 1.25rem; font-size: 0.9375rem; display: none; }
  .message.error { color: var(--error); }

  .download {
    display: none;
    margin-top: 1.25rem;
    text-align: center;
  }
  .download a {
    display: inline-block;
    padding: 0.875rem 1.5rem;
    border-radius: var(--radius);
    background: var(--accent);
    color: #fff;
    font-weight: 600;
    text-decoration: none;
  }

  pre.raw {
    display: none;
    margin-top: 1rem;
    padding: 1rem;
    border: 1px solid var(--border);
    border-radius: var(--radius);
    background: var(--surface);
    font-size: 0.8125rem;
    white-space: pre-wrap;
    word-break: break-word;
    max-height: 320px;
    overflow: auto;
  }
</style>
</head>
<body>
  <h1>AI Portfolio Website Generator</h1>
  <p class="subtitle">Describe yourself and get a complete portfolio website (HTML + CSS + JS).</p>

  <div class="container">
    <textarea id="brief" placeholder="Example: I am a Data Scientist with 5+ years of experience in ML, NLP, Python..."></textarea>
    <button id="generate">Generate Portfolio Website</button>
    <div class="spinner" id="spinner"></div>
    <p class="message" id="message"></p>
    <pre class="raw" id="raw"></pre>
    <div class="download" id="download">
      <a id="downloadLink" href="#">Download Portfolio Website</a>
    </div>
  </div>

<script>
(function () {
  var briefEl = document.getElementById('brief');
  var button = document.getElementById('generate');
  var spinner = document.getElementById('spinner');
  var message = document.getElementById('message');
  var raw = document.getElementById('raw');
  var download = document.getElementById('download');
  var downloadLink = document.getElementById('downloadLink');

  function reset() {
    message.style.display = 'none';
    message.classList.remove('error');
    raw.style.display = 'none';
    download.style.display = 'none';
  }

  function showError(text, rawReply) {
    message.textContent = text;
    message.classList.add('error');
    message.style.display = 'block';
    if (rawReply) {
      raw.textContent = rawReply;
      raw.style.display = 'block';
    }
  }

  button.addEventListener('click', function () {
    reset();

    var brief = briefEl.value;
    if (!brief.trim()) {
      showError('Please enter your details.');
      return;
    }

    button.disabled = true;
    spinner.style.display = 'block';

    fetch('/portfolio/generate', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ prompt: brief })
    }).then(function (resp) {
      return resp.json().then(function (body) { return { ok: resp.ok, body: body }; });
    }).then(function (result) {
      if (!result.ok) {
        showError(result.body.error || 'Generation failed.', result.body.rawReply);
        return;
      }
      downloadLink.href = '/portfolio/' + result.body.portfolioId + '/download';
      download.style.display = 'block';
      message.textContent = 'Portfolio website generated successfully. Unzip the files and open index.html in your browser.';
      message.style.display = 'block';
    }).catch(function (err) {
      showError('Request failed: ' + err);
    }).finally(function () {
      button.disabled = false;
      spinner.style.display = 'none';
    });
  });
})();
</script>
</body>
</html>
`
